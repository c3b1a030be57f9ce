// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing to a closed pipe, as
// when a downstream consumer like `head` exits early. Writers treat it as a
// clean end of output rather than a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
