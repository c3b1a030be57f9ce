// internal/rmdupapp/app.go

// Package rmdupapp wires the seqscan-rmdup command: it streams FASTA/FASTQ
// records, drops the ones whose key was seen before, and passes the rest
// through unchanged.
package rmdupapp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"seqscan-core/dedup"
	"seqscan-core/fasta"
	"seqscan-core/fastq"
	"seqscan/internal/config"
	"seqscan/internal/rmdupcli"
	"seqscan/internal/version"
	"seqscan/internal/writers"
)

// Report is the JSON run report written to stderr with --report.
type Report struct {
	RunID     string   `json:"run_id"`
	Inputs    []string `json:"inputs"`
	By        string   `json:"by"`
	Canonical bool     `json:"canonical"`
	Exact     bool     `json:"exact"`
	Kept      uint64   `json:"kept"`
	Dropped   uint64   `json:"dropped"`
	Distinct  uint64   `json:"distinct"`
}

// RunContext runs seqscan-rmdup. Exit codes: 0 ok, 2 usage/config error,
// 3 I/O error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := rmdupcli.NewFlagSet("seqscan-rmdup")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := rmdupcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "seqscan-rmdup version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if !opts.Explicit["expected-items"] && cfg.Rmdup.ExpectedItems > 0 {
			opts.ExpectedItems = cfg.Rmdup.ExpectedItems
		}
		if !opts.Explicit["false-positive-rate"] && cfg.Rmdup.FalsePositiveRate > 0 {
			opts.FalsePositiveRate = cfg.Rmdup.FalsePositiveRate
		}
	}

	var set dedup.Set
	if opts.Exact {
		set = dedup.NewExact()
	} else {
		ps, err := dedup.NewProbabilistic(opts.ExpectedItems, opts.FalsePositiveRate)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		set = ps
	}

	rep := Report{
		RunID:     uuid.NewString(),
		Inputs:    opts.SeqFiles,
		By:        opts.By,
		Canonical: opts.Canonical,
		Exact:     opts.Exact,
	}

	keyOf := func(id string, seq []byte) uint64 {
		if opts.By == rmdupcli.ByID {
			return dedup.KeyID(id)
		}
		return dedup.Key(seq, opts.Canonical)
	}
	sieve := func(id string, seq []byte) bool {
		k := keyOf(id, seq)
		if set.Seen(k) {
			rep.Dropped++
			return false
		}
		set.Add(k)
		rep.Kept++
		return true
	}

	var runErr error
	for _, f := range opts.SeqFiles {
		if opts.Fastq {
			runErr = fastq.StreamRecordsPathCtx(parent, f, func(r fastq.Record) error {
				if !sieve(r.ID, r.Seq) {
					return nil
				}
				return writeFastq(outw, r)
			})
		} else {
			runErr = fasta.StreamRecordsPathCtx(parent, f, func(r fasta.Record) error {
				if !sieve(r.ID, r.Seq) {
					return nil
				}
				return writeFasta(outw, r)
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

	if opts.Report {
		rep.Distinct = set.Len()
		enc := json.NewEncoder(stderr)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return 3
		}
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

const fastaWidth = 60

func writeFasta(w io.Writer, r fasta.Record) error {
	if _, err := fmt.Fprintf(w, ">%s\n", r.ID); err != nil {
		return err
	}
	for i := 0; i < len(r.Seq); i += fastaWidth {
		end := i + fastaWidth
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", r.Seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func writeFastq(w io.Writer, r fastq.Record) error {
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", r.ID, r.Seq, r.Qual)
	return err
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
