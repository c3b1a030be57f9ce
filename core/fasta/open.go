// core/fasta/open.go
package fasta

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open exposes the transparent decompressing opener for sibling readers
// (package fastq shares it).
func Open(path string) (io.ReadCloser, error) { return openReader(path) }

// openReader opens path ("-" = stdin) and transparently decodes gzip, zstd
// and lz4 input, detected by magic bytes first and file suffix as fallback.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// ReadFull retries short reads; files under 4 bytes are fine, they just
	// fall through to the suffix checks.
	var sig [4]byte
	n, err := io.ReadFull(fh, sig[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = fh.Close()
		return nil, err
	}
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}

	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil

	case (n == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) ||
		strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		closeDecoder := closerFunc(func() error { zr.Close(); return nil })
		return &multiReadCloser{Reader: zr, closers: []io.Closer{closeDecoder, fh}}, nil

	case (n == 4 && sig[0] == 0x04 && sig[1] == 0x22 && sig[2] == 0x4d && sig[3] == 0x18) ||
		strings.HasSuffix(path, ".lz4"):
		return &multiReadCloser{Reader: lz4.NewReader(fh), closers: []io.Closer{fh}}, nil
	}
	return fh, nil
}
