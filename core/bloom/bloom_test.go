// core/bloom/bloom_test.go
package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParameterRejection(t *testing.T) {
	cases := []struct {
		name  string
		items int
		fpr   float64
	}{
		{"zero items", 0, 0.01},
		{"negative items", -5, 0.01},
		{"fpr zero", 100, 0},
		{"fpr one", 100, 1},
		{"fpr above one", 100, 1.5},
		{"fpr negative", 100, -0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.items, tc.fpr)
			require.Error(t, err)
		})
	}
}

func TestNew_OptimalParameters(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)
	// m = ceil(-1000 * ln(0.01) / ln(2)^2) = 9586, k = ceil(m/n * ln 2) = 7
	assert.Equal(t, uint32(9586), f.NumBits())
	assert.Equal(t, 7, f.NumHashes())
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	f, err := New(500, 0.01)
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		f.Add([]byte(fmt.Sprintf("read-%d", i)))
	}
	for i := 0; i < 500; i++ {
		require.Truef(t, f.Contains([]byte(fmt.Sprintf("read-%d", i))), "item %d lost", i)
	}
	assert.Equal(t, uint64(500), f.Items())
}

func TestFilter_BoundedFalsePositiveRate(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		f.Add([]byte(fmt.Sprintf("added-%d", i)))
	}
	fp := 0
	const probes = 10000
	for i := 0; i < probes; i++ {
		if f.Contains([]byte(fmt.Sprintf("absent-%d", i))) {
			fp++
		}
	}
	// target 1%; allow generous slack for hash variance
	assert.Less(t, float64(fp)/probes, 0.05)
	assert.InDelta(t, 0.01, f.EstimatedFalsePositiveRate(), 0.02)
}

func TestFilter_UnionIntersection(t *testing.T) {
	a, err := New(100, 0.01)
	require.NoError(t, err)
	b, err := New(100, 0.01)
	require.NoError(t, err)
	a.Add([]byte("shared"))
	a.Add([]byte("only-a"))
	b.Add([]byte("shared"))
	b.Add([]byte("only-b"))

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.True(t, u.Contains([]byte("shared")))
	assert.True(t, u.Contains([]byte("only-a")))
	assert.True(t, u.Contains([]byte("only-b")))
	assert.Equal(t, uint64(4), u.Items()) // over-counts the shared item

	i, err := a.Intersect(b)
	require.NoError(t, err)
	assert.True(t, i.Contains([]byte("shared")))
	assert.False(t, i.Contains([]byte("only-a")))
	assert.Equal(t, uint64(0), i.Items())
}

func TestFilter_SetAlgebraGuardsParameters(t *testing.T) {
	a, err := New(100, 0.01)
	require.NoError(t, err)
	b, err := New(1000, 0.05)
	require.NoError(t, err)

	_, err = a.Union(b)
	assert.ErrorIs(t, err, ErrMismatchedFilters)
	_, err = a.Intersect(b)
	assert.ErrorIs(t, err, ErrMismatchedFilters)
}

func TestFilter_OperandsUntouchedBySetAlgebra(t *testing.T) {
	a, err := New(100, 0.01)
	require.NoError(t, err)
	b, err := New(100, 0.01)
	require.NoError(t, err)
	a.Add([]byte("x"))

	u, err := a.Union(b)
	require.NoError(t, err)
	u.Add([]byte("y"))
	assert.False(t, a.Contains([]byte("y")))
	assert.False(t, b.Contains([]byte("x")))
}
