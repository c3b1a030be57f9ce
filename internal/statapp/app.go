// internal/statapp/app.go

// Package statapp wires the seqscan-stats command: per-record length and GC
// rows plus an aggregate block (N50/N90, length mean/SD) over all inputs.
package statapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqscan-core/fasta"
	"seqscan-core/fastq"
	"seqscan-core/stats"
	"seqscan/internal/statcli"
	"seqscan/internal/version"
	"seqscan/internal/writers"
)

// RunContext runs seqscan-stats. Exit codes: 0 ok, 2 usage error, 3 I/O error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := statcli.NewFlagSet("seqscan-stats")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := statcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqscan-stats version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	agg := newAggregator(opts.Fastq)

	if !opts.Aggregate && opts.Header {
		if opts.Fastq {
			_, _ = fmt.Fprintln(outw, "source_file\tsequence_id\tlength\tgc\tmean_quality")
		} else {
			_, _ = fmt.Fprintln(outw, "source_file\tsequence_id\tlength\tgc")
		}
	}

	var runErr error
	for _, f := range opts.SeqFiles {
		file := f
		if opts.Fastq {
			runErr = fastq.StreamRecordsPathCtx(parent, file, func(r fastq.Record) error {
				gc := stats.GCContent(r.Seq)
				mq := fastq.MeanQuality(r.Qual, fastq.DetectEncoding(r.Qual))
				agg.add(len(r.Seq), gc, mq)
				if opts.Aggregate {
					return nil
				}
				_, err := fmt.Fprintf(outw, "%s\t%s\t%d\t%.4f\t%.2f\n", file, r.ID, len(r.Seq), gc, mq)
				return err
			})
		} else {
			runErr = fasta.StreamRecordsPathCtx(parent, file, func(r fasta.Record) error {
				gc := stats.GCContent(r.Seq)
				agg.add(len(r.Seq), gc, 0)
				if opts.Aggregate {
					return nil
				}
				_, err := fmt.Fprintf(outw, "%s\t%s\t%d\t%.4f\n", file, r.ID, len(r.Seq), gc)
				return err
			})
		}
		if runErr != nil {
			break
		}
	}
	if writers.IsBrokenPipe(runErr) {
		runErr = nil
	}
	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}

	if opts.Aggregate {
		agg.write(outw)
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

type aggregator struct {
	fastq   bool
	lengths []int
	length  stats.Welford
	gc      stats.Welford
	qual    stats.Welford
	total   int
	min     int
	max     int
}

func newAggregator(fastq bool) *aggregator {
	return &aggregator{fastq: fastq, min: -1}
}

func (a *aggregator) add(n int, gc, meanQual float64) {
	a.lengths = append(a.lengths, n)
	a.length.Add(float64(n))
	a.gc.Add(gc)
	if a.fastq {
		a.qual.Add(meanQual)
	}
	a.total += n
	if a.min < 0 || n < a.min {
		a.min = n
	}
	if n > a.max {
		a.max = n
	}
}

func (a *aggregator) write(w io.Writer) {
	minLen := a.min
	if minLen < 0 {
		minLen = 0
	}
	_, _ = fmt.Fprintf(w, "records\t%d\n", a.length.N())
	_, _ = fmt.Fprintf(w, "total_bp\t%d\n", a.total)
	_, _ = fmt.Fprintf(w, "min_length\t%d\n", minLen)
	_, _ = fmt.Fprintf(w, "max_length\t%d\n", a.max)
	_, _ = fmt.Fprintf(w, "mean_length\t%.2f\n", a.length.Mean())
	_, _ = fmt.Fprintf(w, "sd_length\t%.2f\n", a.length.SD())
	_, _ = fmt.Fprintf(w, "n50\t%d\n", stats.NStat(a.lengths, 0.5))
	_, _ = fmt.Fprintf(w, "n90\t%d\n", stats.NStat(a.lengths, 0.9))
	_, _ = fmt.Fprintf(w, "mean_gc\t%.4f\n", a.gc.Mean())
	if a.fastq {
		_, _ = fmt.Fprintf(w, "mean_quality\t%.2f\n", a.qual.Mean())
	}
}

// flushExit flushes buffered stdout, downgrading broken pipes to success.
func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
