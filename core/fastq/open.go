// core/fastq/open.go
package fastq

import (
	"io"

	"seqscan-core/fasta"
)

func openReader(path string) (io.ReadCloser, error) { return fasta.Open(path) }
