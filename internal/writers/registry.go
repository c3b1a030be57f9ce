// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"seqscan/internal/scan"
)

// StartFunc spins up a writer goroutine for hits. Closing the returned
// channel flushes the output; the error channel delivers the terminal write
// error (nil on success) exactly once.
type StartFunc func(out io.Writer, header bool, bufSize int) (chan<- scan.Hit, <-chan error)

var hitWriters = map[string]StartFunc{}

// Register binds a format name to a writer (last registration wins).
func Register(format string, fn StartFunc) { hitWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() string {
	names := make([]string, 0, len(hitWriters))
	for n := range hitWriters {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Start dispatches to the writer registered for format.
func Start(format string, out io.Writer, header bool, bufSize int) (chan<- scan.Hit, <-chan error, error) {
	fn, ok := hitWriters[format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q (want %s)", format, Formats())
	}
	in, errCh := fn(out, header, bufSize)
	return in, errCh, nil
}
