// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"seqscan/internal/scan"
)

func init() { Register("json", startJSON) }

// startJSON buffers all hits and writes one indented JSON array. Use jsonl
// for outputs too large to hold in memory.
func startJSON(out io.Writer, _ bool, bufSize int) (chan<- scan.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		hits := make([]scan.Hit, 0, 64)
		for h := range in {
			hits = append(hits, h)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err := enc.Encode(hits)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
