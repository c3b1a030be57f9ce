// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"seqscan/internal/scan"
)

func init() { Register("jsonl", startJSONL) }

// startJSONL streams each hit as one JSON object per line.
func startJSONL(out io.Writer, _ bool, bufSize int) (chan<- scan.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for h := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(h)
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
