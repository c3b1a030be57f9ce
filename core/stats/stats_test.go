// core/stats/stats_test.go
package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"half", "ATCGATCG", 0.5},
		{"all gc", "GCGCGC", 1},
		{"all at", "ATATAT", 0},
		{"empty", "", 0},
		{"lowercase", "atcgatcg", 0.5},
		{"mixed case", "AtCgAtCg", 0.5},
		{"ambiguous skipped", "ATCGNNATCG", 0.5},
		{"only ambiguous", "NNNXXX", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, GCContent([]byte(tc.in)), 1e-9)
		})
	}
}

func TestNStat(t *testing.T) {
	lengths := []int{2, 2, 2, 3, 3, 4, 8, 8}
	// total 32; sorted desc 8,8,4,3,3,2,2,2; cumulative 8,16 >= 16 → N50 = 8
	assert.Equal(t, 8, NStat(lengths, 0.5))
	// N90: threshold 28.8; cumulative 8,16,20,23,26,28,30 → length 2
	assert.Equal(t, 2, NStat(lengths, 0.9))
	assert.Equal(t, 0, NStat(nil, 0.5))
	assert.Equal(t, 0, NStat(lengths, 0))
}

func TestWelford(t *testing.T) {
	var w Welford
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		w.Add(x)
	}
	assert.Equal(t, 8, w.N())
	assert.InDelta(t, 5.0, w.Mean(), 1e-9)
	// sample variance of this classic set is 32/7
	assert.InDelta(t, 32.0/7.0, w.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), w.SD(), 1e-9)
}

func TestWelfordSmallN(t *testing.T) {
	var w Welford
	assert.Zero(t, w.Mean())
	assert.Zero(t, w.Variance())
	w.Add(3)
	assert.InDelta(t, 3, w.Mean(), 1e-9)
	assert.Zero(t, w.Variance())
}
