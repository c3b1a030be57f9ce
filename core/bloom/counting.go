// core/bloom/counting.go
package bloom

import "math"

// counterMax is the saturation ceiling of each slot. A saturated counter is
// never incremented or decremented again, trading exact deletion for bounded
// memory per slot.
const counterMax = math.MaxUint8

// CountingFilter is a Bloom filter over saturating 8-bit counters instead of
// bits, which makes deletion possible.
type CountingFilter struct {
	counters  []uint8
	numBits   uint32
	numHashes int
	seeds     []uint32
	items     uint64
}

// NewCounting derives parameters exactly like New and allocates one counter
// per bit position.
func NewCounting(expectedItems int, fpr float64) (*CountingFilter, error) {
	base, err := New(expectedItems, fpr)
	if err != nil {
		return nil, err
	}
	return &CountingFilter{
		counters:  make([]uint8, base.numBits),
		numBits:   base.numBits,
		numHashes: base.numHashes,
		seeds:     base.seeds,
	}, nil
}

// NumBits returns the number of counter slots.
func (f *CountingFilter) NumBits() uint32 { return f.numBits }

// NumHashes returns the number of hash functions.
func (f *CountingFilter) NumHashes() int { return f.numHashes }

// Items returns the approximate number of items currently held.
func (f *CountingFilter) Items() uint64 { return f.items }

// Add increments the item's counters, skipping saturated slots.
func (f *CountingFilter) Add(item []byte) {
	for _, s := range f.seeds {
		i := sum32(item, s) % f.numBits
		if f.counters[i] < counterMax {
			f.counters[i]++
		}
	}
	f.items++
}

// Remove decrements the item's counters, floored at zero. Membership is
// verified first so removing an item that was never added leaves unrelated
// counters intact; the return value reports whether a removal happened.
func (f *CountingFilter) Remove(item []byte) bool {
	if !f.Contains(item) {
		return false
	}
	for _, s := range f.seeds {
		i := sum32(item, s) % f.numBits
		if f.counters[i] > 0 {
			f.counters[i]--
		}
	}
	if f.items > 0 {
		f.items--
	}
	return true
}

// Contains reports whether every counter touched by item is non-zero.
func (f *CountingFilter) Contains(item []byte) bool {
	for _, s := range f.seeds {
		if f.counters[sum32(item, s)%f.numBits] == 0 {
			return false
		}
	}
	return true
}
