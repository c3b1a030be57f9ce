// core/dedup/dedup.go

// Package dedup provides the seen-set abstraction behind streaming record
// deduplication. Records are reduced to 64-bit xxhash keys; the set behind
// the keys is either exact (a roaring bitmap, zero false drops, memory grows
// with distinct records) or probabilistic (a scalable Bloom filter, bounded
// memory, bounded false-drop rate).
package dedup

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/cespare/xxhash/v2"

	"seqscan-core/bloom"
	"seqscan-core/dna"
)

// Key hashes a sequence for deduplication. Hashing is case-insensitive; in
// canonical mode the lexicographically smaller of the sequence and its
// reverse complement is hashed, so the two strands of one molecule dedupe
// together.
func Key(seq []byte, canonical bool) uint64 {
	up := upper(seq)
	if canonical {
		if rc := dna.RevComp(up); lessBytes(rc, up) {
			up = rc
		}
	}
	return xxhash.Sum64(up)
}

// KeyID hashes a record identifier for identifier-based deduplication.
func KeyID(id string) uint64 { return xxhash.Sum64String(id) }

func upper(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if 'a' <= b && b <= 'z' {
			b -= 0x20
		}
		out[i] = b
	}
	return out
}

func lessBytes(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Set records which keys have been seen. Implementations are not safe for
// concurrent use.
type Set interface {
	// Seen reports whether key was added before. Probabilistic
	// implementations may rarely report true for a fresh key.
	Seen(key uint64) bool
	// Add marks key as seen.
	Add(key uint64)
	// Len returns the (approximate) number of distinct keys added.
	Len() uint64
}

// Exact is a Set with no false positives, backed by a roaring bitmap.
type Exact struct {
	bm *roaring64.Bitmap
}

// NewExact returns an empty exact seen-set.
func NewExact() *Exact { return &Exact{bm: roaring64.New()} }

func (e *Exact) Seen(key uint64) bool { return e.bm.Contains(key) }
func (e *Exact) Add(key uint64)       { e.bm.Add(key) }
func (e *Exact) Len() uint64          { return e.bm.GetCardinality() }

// Probabilistic is a Set backed by a scalable Bloom filter: bounded memory at
// the cost of a bounded chance of flagging a fresh key as seen.
type Probabilistic struct {
	sf *bloom.ScalableFilter
}

// NewProbabilistic sizes the first filter generation for expectedItems at
// the given false-positive (false-drop) rate.
func NewProbabilistic(expectedItems int, fpr float64) (*Probabilistic, error) {
	sf, err := bloom.NewScalable(expectedItems, fpr, 2)
	if err != nil {
		return nil, err
	}
	return &Probabilistic{sf: sf}, nil
}

func (p *Probabilistic) Seen(key uint64) bool { return p.sf.Contains(keyBytes(key)) }
func (p *Probabilistic) Add(key uint64)       { p.sf.Add(keyBytes(key)) }
func (p *Probabilistic) Len() uint64          { return p.sf.Items() }

func keyBytes(key uint64) []byte {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(key >> (8 * i))
	}
	return b[:]
}
