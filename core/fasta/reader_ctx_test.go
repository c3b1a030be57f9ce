// core/fasta/reader_ctx_test.go
package fasta

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func nilCtx() context.Context { return context.Background() }

func TestStreamRecordsPathCtx_CancelImmediately_YieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	n := 0
	err := StreamRecordsPathCtx(ctx, fn, func(Record) error { n++; return nil })
	if err == nil {
		t.Fatal("expected context error from immediate cancel")
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}
