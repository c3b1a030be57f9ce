// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"seqscan-core/fasta"
	"seqscan/internal/scan"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	ChunkSize int // FASTA chunking window; 0 disables chunking
	Overlap   int // overlap between chunks (>= longest pattern - 1)
}

// hitKey identifies a hit in reference-global coordinates. Chunks overlap, so
// a hit inside the overlap region is produced twice; the key collapses the
// duplicates.
type hitKey struct {
	file, rec, pat, strand string
	pos                    int
}

// ForEachHit streams deduplicated hits to visit. A reader goroutine feeds
// chunks from files into a worker pool running sc.ScanChunk; a single
// collector dedupes and invokes visit, so visit needs no locking. The first
// error (reader, visit, or context cancellation) stops the run.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	files []string,
	sc *scan.Scanner,
	visit func(scan.Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		file  string
		chunk fasta.RecordChunk
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan []scan.Hit, cfg.Threads*2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, f := range files {
			file := f
			err := fasta.StreamChunksPathCtx(gctx, file, cfg.ChunkSize, cfg.Overlap, func(c fasta.RecordChunk) error {
				select {
				case jobs <- job{file: file, chunk: c}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				hits := sc.ScanChunk(j.file, j.chunk)
				if len(hits) == 0 {
					continue
				}
				select {
				case results <- hits:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	seen := make(map[hitKey]struct{}, 1<<12)
	var verr error
	for hs := range results {
		if verr != nil {
			continue
		}
		for _, h := range hs {
			k := hitKey{file: h.SourceFile, rec: h.SequenceID, pat: h.Pattern, strand: h.Strand, pos: h.Pos}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if err := visit(h); err != nil {
				verr = err
				cancel()
				break
			}
		}
	}

	if err := g.Wait(); err != nil && verr == nil {
		verr = err
	}
	if verr != nil {
		return verr
	}
	return ctx.Err()
}
