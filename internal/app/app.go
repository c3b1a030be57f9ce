// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"seqscan-core/fasta"
	"seqscan-core/fastq"
	"seqscan/internal/cli"
	"seqscan/internal/config"
	"seqscan/internal/pipeline"
	"seqscan/internal/scan"
	"seqscan/internal/version"
	"seqscan/internal/writers"
)

// RunContext runs the seqscan command. Exit codes: 0 ok, 1 no matches (with
// --no-match-exit), 2 usage/config error, 3 I/O error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "seqscan version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		applyConfig(&opts, cfg)
	}

	algo, err := scan.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	sc, err := scan.New(opts.Patterns, algo, opts.MaxMismatches, opts.BothStrands)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	in, errCh, err := writers.Start(opts.Output, outw, opts.Header, 64)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	hits := 0
	visit := func(h scan.Hit) error {
		in <- h
		hits++
		return nil
	}

	var runErr error
	if opts.Fastq {
		runErr = scanFastq(parent, opts.SeqFiles, sc, visit)
	} else {
		overlap := 0
		if opts.ChunkSize > 0 {
			overlap = sc.MaxPatternLen() - 1
		}
		cfg := pipeline.Config{Threads: threads, ChunkSize: opts.ChunkSize, Overlap: overlap}
		runErr = pipeline.ForEachHit(parent, cfg, opts.SeqFiles, sc, visit)
	}

	close(in)
	if werr := <-errCh; werr != nil && runErr == nil {
		runErr = werr
	}
	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}

	code := 0
	if hits == 0 && opts.NoMatchExit {
		code = 1
	}
	return flushExit(outw, stderr, code)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// scanFastq streams whole FASTQ records through the scanner. Records are not
// chunked, so no cross-chunk dedup is needed.
func scanFastq(ctx context.Context, files []string, sc *scan.Scanner, visit func(scan.Hit) error) error {
	for _, f := range files {
		file := f
		err := fastq.StreamRecordsPathCtx(ctx, file, func(r fastq.Record) error {
			chunk := fasta.RecordChunk{RecordID: r.ID, Offset: 0, Seq: r.Seq, IsLast: true}
			for _, h := range sc.ScanChunk(file, chunk) {
				if err := visit(h); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func applyConfig(opts *cli.Options, cfg config.File) {
	if !opts.Explicit["threads"] && cfg.Threads > 0 {
		opts.Threads = cfg.Threads
	}
	if !opts.Explicit["chunk-size"] && cfg.ChunkSize > 0 {
		opts.ChunkSize = cfg.ChunkSize
	}
	if !opts.Explicit["output"] && cfg.Output != "" {
		opts.Output = cfg.Output
	}
	if !opts.Explicit["algorithm"] && cfg.Algorithm != "" {
		opts.Algorithm = cfg.Algorithm
	}
}

// flushExit flushes buffered stdout, downgrading broken pipes to success and
// surfacing other flush failures as I/O errors.
func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
