// core/bloom/bloom.go

// Package bloom implements probabilistic set-membership filters for
// large-scale sequence deduplication: a basic Bloom filter, a counting
// (deletable) variant, and a scalable (auto-growing) variant, all driven by
// the same seeded 32-bit hash.
//
// Filters never report a false negative; false positives are bounded by the
// configured rate. No filter synchronizes internally: concurrent writers to
// the same instance need external mutual exclusion.
package bloom

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// ErrMismatchedFilters is returned by Union/Intersect when the operands were
// built with different bit or hash counts.
var ErrMismatchedFilters = errors.New("bloom: filters differ in numBits/numHashes")

// Filter is a basic Bloom filter. numBits and numHashes are fixed at
// construction for the life of the filter.
type Filter struct {
	bits      *bitset.BitSet
	numBits   uint32
	numHashes int
	seeds     []uint32
	items     uint64 // approximate; union over-counts shared items
}

// New derives the information-theoretically optimal bit and hash counts for
// expectedItems at the target false-positive rate:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = ceil(m/n * ln(2)), at least 1
func New(expectedItems int, fpr float64) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, fmt.Errorf("bloom: expected items must be positive, got %d", expectedItems)
	}
	if fpr <= 0 || fpr >= 1 {
		return nil, fmt.Errorf("bloom: false-positive rate must be in (0,1), got %g", fpr)
	}
	m := uint32(math.Ceil(-float64(expectedItems) * math.Log(fpr) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}
	k := int(math.Ceil(float64(m) / float64(expectedItems) * math.Ln2))
	if k < 1 {
		k = 1
	}
	seeds := make([]uint32, k)
	for i := range seeds {
		seeds[i] = seedFor(i)
	}
	return &Filter{
		bits:      bitset.New(uint(m)),
		numBits:   m,
		numHashes: k,
		seeds:     seeds,
	}, nil
}

// NumBits returns the size of the bit array.
func (f *Filter) NumBits() uint32 { return f.numBits }

// NumHashes returns the number of hash functions.
func (f *Filter) NumHashes() int { return f.numHashes }

// Items returns the approximate number of items added.
func (f *Filter) Items() uint64 { return f.items }

// Add inserts item into the filter.
func (f *Filter) Add(item []byte) {
	for _, s := range f.seeds {
		f.bits.Set(uint(sum32(item, s) % f.numBits))
	}
	f.items++
}

// Contains reports whether item may have been added. A false return is
// definitive; a true return may be a false positive.
func (f *Filter) Contains(item []byte) bool {
	for _, s := range f.seeds {
		if !f.bits.Test(uint(sum32(item, s) % f.numBits)) {
			return false
		}
	}
	return true
}

// EstimatedFalsePositiveRate approximates the current FPR from the fill
// ratio: (setBits/numBits)^numHashes.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	fill := float64(f.bits.Count()) / float64(f.numBits)
	return math.Pow(fill, float64(f.numHashes))
}

// Union returns a new filter holding every item of both operands (bitwise
// OR). The operands must share numBits and numHashes; the result's item
// count is the possibly over-counting sum of both.
func (f *Filter) Union(other *Filter) (*Filter, error) {
	if !f.compatible(other) {
		return nil, ErrMismatchedFilters
	}
	out := f.emptyClone()
	out.bits = f.bits.Union(other.bits)
	out.items = f.items + other.items
	return out, nil
}

// Intersect returns a new filter holding items present in both operands
// (bitwise AND). The true item count is unknowable and reported as zero.
func (f *Filter) Intersect(other *Filter) (*Filter, error) {
	if !f.compatible(other) {
		return nil, ErrMismatchedFilters
	}
	out := f.emptyClone()
	out.bits = f.bits.Intersection(other.bits)
	return out, nil
}

func (f *Filter) compatible(other *Filter) bool {
	return f.numBits == other.numBits && f.numHashes == other.numHashes
}

func (f *Filter) emptyClone() *Filter {
	seeds := make([]uint32, len(f.seeds))
	copy(seeds, f.seeds)
	return &Filter{numBits: f.numBits, numHashes: f.numHashes, seeds: seeds}
}
