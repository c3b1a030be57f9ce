// core/bloom/scalable.go
package bloom

import (
	"fmt"
	"math"
)

// growThreshold triggers a new generation once the newest generation's
// estimated FPR exceeds this share of the overall target.
const growThreshold = 0.9

// ScalableFilter grows to hold an unbounded stream of items while keeping the
// cumulative false-positive rate near the configured target. Generations get
// geometrically larger (initialSize * growthFactor^i) and geometrically
// tighter (targetFPR * 0.5^(i+1)), so the series of per-generation rates
// converges toward the overall target.
type ScalableFilter struct {
	generations  []*Filter
	initialSize  int
	growthFactor int
	targetFPR    float64
	items        uint64
}

// NewScalable validates parameters like New. The overall target rate is
// checked before the per-generation halving, so a target of 1 or above is
// rejected even though half of it would be a valid generation rate.
// growthFactor < 2 defaults to 2.
func NewScalable(initialSize int, targetFPR float64, growthFactor int) (*ScalableFilter, error) {
	if targetFPR <= 0 || targetFPR >= 1 {
		return nil, fmt.Errorf("bloom: false-positive rate must be in (0,1), got %g", targetFPR)
	}
	if growthFactor < 2 {
		growthFactor = 2
	}
	first, err := New(initialSize, targetFPR*0.5)
	if err != nil {
		return nil, err
	}
	return &ScalableFilter{
		generations:  []*Filter{first},
		initialSize:  initialSize,
		growthFactor: growthFactor,
		targetFPR:    targetFPR,
	}, nil
}

// Add inserts item. Re-adding an item already reported present is a no-op,
// so duplicate-heavy streams cannot force growth.
func (f *ScalableFilter) Add(item []byte) {
	if f.Contains(item) {
		return
	}
	cur := f.generations[len(f.generations)-1]
	cur.Add(item)
	f.items++
	if cur.EstimatedFalsePositiveRate() > growThreshold*f.targetFPR {
		f.grow()
	}
}

// Contains scans every generation, short-circuiting on the first hit.
func (f *ScalableFilter) Contains(item []byte) bool {
	for _, g := range f.generations {
		if g.Contains(item) {
			return true
		}
	}
	return false
}

// Items returns the approximate number of distinct items added.
func (f *ScalableFilter) Items() uint64 { return f.items }

// Generations returns the current number of generations.
func (f *ScalableFilter) Generations() int { return len(f.generations) }

func (f *ScalableFilter) grow() {
	i := len(f.generations)
	size := f.initialSize
	for g := 0; g < i; g++ {
		size *= f.growthFactor
	}
	fpr := f.targetFPR * math.Pow(0.5, float64(i+1))
	next, err := New(size, fpr)
	if err != nil {
		// Parameters were validated at construction; a failure here would
		// need size or fpr to leave their valid ranges, which the geometric
		// schedule cannot do.
		return
	}
	f.generations = append(f.generations, next)
}
