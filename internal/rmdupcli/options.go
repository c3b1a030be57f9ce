// internal/rmdupcli/options.go
package rmdupcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscan/internal/version"
)

// Dedup key modes
const (
	BySeq = "seq"
	ByID  = "id"
)

// Options holds all CLI flags and arguments for seqscan-rmdup.
type Options struct {
	// Input
	SeqFiles []string
	Fastq    bool

	// Key derivation
	By        string // seq | id
	Canonical bool   // collapse forward and reverse-complement reads

	// Seen-set
	Exact             bool
	ExpectedItems     int
	FalsePositiveRate float64

	// Output
	Report bool // JSON run report on stderr
	Quiet  bool

	ConfigPath string
	Version    bool

	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: streaming read deduplication

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

	fs.StringVar(&opt.By, "by", BySeq, "dedup key: seq | id ["+BySeq+"]")
	fs.BoolVar(&opt.Canonical, "canonical", false, "treat a read and its reverse complement as duplicates [false]")

	fs.BoolVar(&opt.Exact, "exact", false, "exact seen-set (no false drops, memory grows with input) [false]")
	fs.IntVar(&opt.ExpectedItems, "expected-items", 1_000_000, "expected distinct reads for the probabilistic seen-set [1000000]")
	fs.Float64Var(&opt.FalsePositiveRate, "false-positive-rate", 0.001, "false-drop rate for the probabilistic seen-set [0.001]")

	fs.BoolVar(&opt.Report, "report", false, "write a JSON run report to stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML defaults file [none]")

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
	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.By != BySeq && opt.By != ByID {
		return opt, fmt.Errorf("invalid --by %q (want seq or id)", opt.By)
	}
	if opt.Canonical && opt.By == ByID {
		return opt, errors.New("--canonical only applies to --by seq")
	}
	if opt.ExpectedItems <= 0 {
		return opt, errors.New("--expected-items must be > 0")
	}
	if opt.FalsePositiveRate <= 0 || opt.FalsePositiveRate >= 1 {
		return opt, errors.New("--false-positive-rate must be in (0, 1)")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
