// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// RecordChunk is a window of a single FASTA record's sequence.
// Offset is the 0-based position of Seq[0] within the full sequence, so hit
// coordinates inside a chunk map back to record coordinates by addition.
type RecordChunk struct {
	RecordID string
	Offset   int
	Seq      []byte
	IsLast   bool
}

// StreamChunksCtx parses FASTA from r and emits overlapped sequence chunks.
//
// chunkSize <= 0 → whole record as one chunk (overlap ignored)
// overlap < 0    → treated as 0; overlap >= chunkSize collapses to one chunk
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func StreamChunksCtx(ctx context.Context, r io.Reader, chunkSize, overlap int, emit func(RecordChunk) error) error {
	if overlap < 0 {
		overlap = 0
	}
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		step := chunkSize - overlap
		if chunkSize <= 0 || chunkSize >= len(seq) || step <= 0 {
			return emit(RecordChunk{RecordID: id, Offset: 0, Seq: append([]byte(nil), seq...), IsLast: true})
		}
		for off := 0; off < len(seq); off += step {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			end := off + chunkSize
			if end > len(seq) {
				end = len(seq)
			}
			ch := RecordChunk{
				RecordID: id,
				Offset:   off,
				Seq:      append([]byte(nil), seq[off:end]...),
				IsLast:   end == len(seq),
			}
			if err := emit(ch); err != nil {
				return err
			}
			if ch.IsLast {
				break
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if id != "" || len(seq) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

// StreamChunksPathCtx opens path (gzip/zstd/lz4 transparent, "-" = stdin)
// and streams its chunks.
func StreamChunksPathCtx(ctx context.Context, path string, chunkSize, overlap int, emit func(RecordChunk) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamChunksCtx(ctx, rc, chunkSize, overlap, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
