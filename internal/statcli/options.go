// internal/statcli/options.go
package statcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscan/internal/version"
)

// Options holds all CLI flags and arguments for seqscan-stats.
type Options struct {
	SeqFiles []string
	Fastq    bool

	Aggregate bool // only the aggregate block, no per-record rows
	Header    bool // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-record and aggregate sequence statistics

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA/FASTQ file(s) (repeatable or '-') [*]")
	fs.BoolVar(&opt.Fastq, "fastq", false, "treat inputs as FASTQ [false]")
	fs.BoolVar(&opt.Aggregate, "aggregate", false, "print only the aggregate summary [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in per-record output [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader

	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
