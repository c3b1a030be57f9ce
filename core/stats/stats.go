// core/stats/stats.go

// Package stats provides streaming sequence statistics: GC content, N50-style
// assembly metrics, and a Welford accumulator for single-pass mean/variance.
package stats

import (
	"math"
	"sort"
)

// GCContent returns the ratio of G/C bases over all unambiguous bases.
// Ambiguity codes and gaps are excluded from the denominator; a sequence
// with no unambiguous base returns 0.
func GCContent(seq []byte) float64 {
	gc, valid := 0, 0
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
			valid++
		case 'A', 'T', 'a', 't':
			valid++
		}
	}
	if valid == 0 {
		return 0
	}
	return float64(gc) / float64(valid)
}

// NStat returns the N-statistic of the given contig lengths at the given
// fraction: the length L such that contigs of length >= L cover at least
// fraction of the total. NStat(lengths, 0.5) is N50, 0.9 is N90. Empty input
// returns 0.
func NStat(lengths []int, fraction float64) int {
	if len(lengths) == 0 || fraction <= 0 || fraction > 1 {
		return 0
	}
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	total := 0
	for _, l := range sorted {
		total += l
	}
	threshold := fraction * float64(total)
	cum := 0
	for _, l := range sorted {
		cum += l
		if float64(cum) >= threshold {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// Welford accumulates mean and variance in a single numerically stable pass.
// The zero value is ready to use.
type Welford struct {
	n    int
	mean float64
	m2   float64
}

// Add folds one observation into the accumulator.
func (w *Welford) Add(x float64) {
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

// N returns the number of observations.
func (w *Welford) N() int { return w.n }

// Mean returns the running mean (0 before any observation).
func (w *Welford) Mean() float64 { return w.mean }

// Variance returns the sample variance (0 with fewer than two observations).
func (w *Welford) Variance() float64 {
	if w.n < 2 {
		return 0
	}
	return w.m2 / float64(w.n-1)
}

// SD returns the sample standard deviation.
func (w *Welford) SD() float64 { return math.Sqrt(w.Variance()) }
