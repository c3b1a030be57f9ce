// internal/writers/tsv.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"seqscan/internal/scan"
)

func init() { Register("text", startTSV) }

const tsvHeader = "source_file\tsequence_id\tpattern\tstrand\tpos\tlength\tmismatches\tmatched"

// startTSV streams one tab-separated row per hit, optionally preceded by a
// header line.
func startTSV(out io.Writer, header bool, bufSize int) (chan<- scan.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		var err error
		if header {
			_, err = fmt.Fprintln(bw, tsvHeader)
		}
		for h := range in {
			if err != nil {
				continue // drain after first failure
			}
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				h.SourceFile, h.SequenceID, h.Pattern, h.Strand,
				h.Pos, h.Length, h.Mismatches, h.Matched)
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
