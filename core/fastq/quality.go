// core/fastq/quality.go
package fastq

import "fmt"

// Encoding identifies a FASTQ quality-score encoding by its ASCII offset.
type Encoding int

const (
	// EncodingUnknown is returned when the observed bytes fit no encoding.
	EncodingUnknown Encoding = iota
	// EncodingSanger is phred+33 (Sanger, Illumina 1.8+).
	EncodingSanger
	// EncodingIllumina13 is phred+64 (Illumina 1.3 to 1.7).
	EncodingIllumina13
)

func (e Encoding) String() string {
	switch e {
	case EncodingSanger:
		return "phred+33"
	case EncodingIllumina13:
		return "phred+64"
	default:
		return "unknown"
	}
}

// Offset returns the ASCII offset of the encoding.
func (e Encoding) Offset() byte {
	if e == EncodingIllumina13 {
		return 64
	}
	return 33
}

// DetectEncoding guesses the encoding from the observed quality byte range.
// Bytes below '@' (64) can only be phred+33; a line whose bytes all sit at
// 'h' (104) or above is almost certainly phred+64 (quality >= 40 is rare in
// phred+33 data). Ambiguous input defaults to phred+33, the modern standard.
func DetectEncoding(qual []byte) Encoding {
	if len(qual) == 0 {
		return EncodingUnknown
	}
	minB, maxB := qual[0], qual[0]
	for _, b := range qual[1:] {
		if b < minB {
			minB = b
		}
		if b > maxB {
			maxB = b
		}
	}
	switch {
	case minB < 33 || maxB > 126:
		return EncodingUnknown
	case minB < 64:
		return EncodingSanger
	case minB >= 104:
		return EncodingIllumina13
	default:
		return EncodingSanger
	}
}

// Convert re-encodes qual from one offset to another, clamping scores to
// [0, 93] so the output stays printable ASCII.
func Convert(qual []byte, from, to Encoding) ([]byte, error) {
	if from == EncodingUnknown || to == EncodingUnknown {
		return nil, fmt.Errorf("fastq: cannot convert unknown quality encoding")
	}
	if from == to {
		return append([]byte(nil), qual...), nil
	}
	out := make([]byte, len(qual))
	for i, b := range qual {
		score := int(b) - int(from.Offset())
		if score < 0 {
			score = 0
		}
		if score > 93 {
			score = 93
		}
		out[i] = byte(score) + to.Offset()
	}
	return out, nil
}

// MeanQuality returns the average phred score of qual under enc, or 0 for
// empty input.
func MeanQuality(qual []byte, enc Encoding) float64 {
	if len(qual) == 0 {
		return 0
	}
	off := int(enc.Offset())
	sum := 0
	for _, b := range qual {
		s := int(b) - off
		if s < 0 {
			s = 0
		}
		sum += s
	}
	return float64(sum) / float64(len(qual))
}
