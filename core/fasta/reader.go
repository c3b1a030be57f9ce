// core/fasta/reader.go
package fasta

import "context"

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamRecordsPathCtx opens path and emits each complete record. It is the
// unchunked convenience over StreamChunksPathCtx.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	return StreamChunksPathCtx(ctx, path, 0, 0, func(c RecordChunk) error {
		return emit(Record{ID: c.RecordID, Seq: c.Seq})
	})
}

// StreamRecords is the legacy helper using a background context.
func StreamRecords(path string, emit func(Record) error) error {
	return StreamRecordsPathCtx(context.Background(), path, emit)
}
