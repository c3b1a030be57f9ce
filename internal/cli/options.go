// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscan/internal/version"
)

// Options holds all CLI flags and arguments for the seqscan command.
type Options struct {
	// Input
	Patterns []string
	SeqFiles []string
	Fastq    bool

	// Matching
	Algorithm     string
	MaxMismatches int
	BothStrands   bool

	// Performance
	Threads   int
	ChunkSize int

	// Output
	Output string
	Header bool // true unless --no-header
	Quiet  bool

	// Behavior
	ConfigPath  string
	NoMatchExit bool // exit 1 when no hits were found

	Version bool

	// Explicit records which flag names the user set, so config file values
	// only fill in untouched flags.
	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: streaming pattern search over FASTA/FASTQ

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

	var patterns stringSlice
	fs.Var(&patterns, "pattern", "pattern to search for (repeatable) [*]")
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA/FASTQ file(s) (repeatable or '-') [*]")
	fs.BoolVar(&opt.Fastq, "fastq", false, "treat inputs as FASTQ [false]")

	fs.StringVar(&opt.Algorithm, "algorithm", "bm", "matcher: bm | kmp | rk | fuzzy | ambig | overlap [bm]")
	fs.IntVar(&opt.MaxMismatches, "max-mismatches", 0, "max mismatches per window (fuzzy only) [0]")
	fs.BoolVar(&opt.BothStrands, "both-strands", false, "also search the reverse complement of each pattern [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "split sequences into N-bp windows (0 = no chunking) [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML defaults file [none]")
	fs.BoolVar(&opt.NoMatchExit, "no-match-exit", false, "exit 1 when nothing matched [false]")

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
	opt.Patterns = patterns
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	if len(opt.Patterns) == 0 {
		return opt, errors.New("at least one --pattern is required")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.ChunkSize < 0 {
		return opt, errors.New("--chunk-size must be >= 0")
	}
	if opt.MaxMismatches < 0 {
		return opt, errors.New("--max-mismatches must be >= 0")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
