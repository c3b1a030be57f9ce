// core/fastq/reader.go

// Package fastq streams 4-line FASTQ records and converts between quality
// encodings.
package fastq

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record represents one FASTQ read.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// StreamRecordsCtx parses 4-line FASTQ from r and emits each record.
// Sequence and quality lines must have equal length; a truncated trailing
// record is an error.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	line := 0
	var rec Record
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		raw := bytes.TrimSpace(sc.Bytes())
		switch line % 4 {
		case 0:
			if len(raw) == 0 {
				continue // tolerate blank lines between records
			}
			if raw[0] != '@' {
				return fmt.Errorf("fastq: record %d: header %q does not start with '@'", line/4+1, raw)
			}
			rec = Record{ID: parseID(raw[1:])}
		case 1:
			rec.Seq = append([]byte(nil), raw...)
		case 2:
			if len(raw) == 0 || raw[0] != '+' {
				return fmt.Errorf("fastq: record %d: separator %q does not start with '+'", line/4+1, raw)
			}
		case 3:
			if len(raw) != len(rec.Seq) {
				return fmt.Errorf("fastq: record %d (%s): quality length %d != sequence length %d",
					line/4+1, rec.ID, len(raw), len(rec.Seq))
			}
			rec.Qual = append([]byte(nil), raw...)
			if err := emit(rec); err != nil {
				return err
			}
		}
		line++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fastq scan: %w", err)
	}
	if line%4 != 0 {
		return fmt.Errorf("fastq: truncated record at end of input")
	}
	return nil
}

// StreamRecordsPathCtx opens path (compressed input and "-" handled as in
// package fasta) and streams its records.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamRecordsCtx(ctx, rc, emit)
}

func parseID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
