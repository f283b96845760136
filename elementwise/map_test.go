// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/elementwise"
)

// getSet hides the Contiguous fast path of SliceAdapter so tests exercise
// the Get/Set fallback.
type getSet[T float32 | float64] struct{ inner elementwise.SliceAdapter[T] }

func (g getSet[T]) Size(s []T) (int, int)   { return g.inner.Size(s) }
func (g getSet[T]) Get(s []T, i int) T      { return g.inner.Get(s, i) }
func (g getSet[T]) Set(s []T, i int, v T)   { g.inner.Set(s, i, v) }
func (g getSet[T]) Make(rows, cols int) []T { return g.inner.Make(rows, cols) }

func square(x float64) float64 { return x * x }

func ramp(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) - float64(n)/2
	}
	return xs
}

func TestMapShapes(t *testing.T) {
	t.Parallel()

	sa := elementwise.SliceAdapter[float64]{}
	tests := []struct {
		name string
		in   []float64
	}{
		{"Empty", []float64{}},
		{"Nil", nil},
		{"One", []float64{3}},
		{"Many", ramp(17)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := elementwise.Map(tc.in, sa, sa, square)
			require.Len(t, out, len(tc.in))
			for i, x := range tc.in {
				assert.Equal(t, x*x, out[i])
			}
		})
	}
}

func TestMapDoesNotWriteInput(t *testing.T) {
	t.Parallel()

	in := ramp(9)
	orig := append([]float64(nil), in...)
	sa := elementwise.SliceAdapter[float64]{}
	out := elementwise.Apply(in, sa, square)
	require.Equal(t, orig, in)
	out[0] = 42
	require.Equal(t, orig, in, "output must not alias input")
}

func TestMapFastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	in := ramp(1000)
	sa := elementwise.SliceAdapter[float64]{}
	kernel := func(x float64) float64 { return math.Exp(-x*x/1e4) + math.Sin(x) }

	fast := elementwise.Map(in, sa, sa, kernel)
	slow := elementwise.Map(in, getSet[float64]{}, getSet[float64]{}, kernel)
	mixed := elementwise.Map(in, sa, getSet[float64]{}, kernel)
	require.Equal(t, fast, slow)
	require.Equal(t, fast, mixed)
}

func TestMapParallelEqualsSerial(t *testing.T) {
	t.Parallel()

	in := ramp(10007)
	sa := elementwise.SliceAdapter[float64]{}
	kernel := func(x float64) float64 { return math.Log1p(x*x) * math.Cos(x) }

	serial := elementwise.Map(in, sa, sa, kernel)
	for _, workers := range []int{2, 3, 8, 64} {
		par := elementwise.Map(in, sa, sa, kernel,
			elementwise.WithWorkers(workers), elementwise.WithMinChunk(7))
		require.Equal(t, serial, par, "workers=%d", workers)

		parSlow := elementwise.Map(in, getSet[float64]{}, getSet[float64]{}, kernel,
			elementwise.WithWorkers(workers), elementwise.WithMinChunk(100))
		require.Equal(t, serial, parSlow, "fallback workers=%d", workers)
	}
}

func TestMapPromotesPrecision(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 1.5, -2}
	out := elementwise.Map(in, elementwise.SliceAdapter[float32]{}, elementwise.SliceAdapter[float64]{},
		func(x float64) float64 { return x / 3 })
	require.Len(t, out, 3)
	for i, x := range in {
		// The kernel sees the widened float32 value, not a rounded decimal.
		assert.Equal(t, float64(x)/3, out[i])
	}
}

func TestMapPropagatesNaN(t *testing.T) {
	t.Parallel()

	sa := elementwise.SliceAdapter[float64]{}
	out := elementwise.Apply([]float64{math.NaN(), math.Inf(1), 2}, sa, square)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsInf(out[1], 1))
	assert.Equal(t, 4.0, out[2])
}

func TestOptions(t *testing.T) {
	t.Parallel()

	o := elementwise.NewOptions()
	assert.Equal(t, elementwise.DefaultWorkers, o.Workers())
	assert.Equal(t, elementwise.DefaultMinChunk, o.MinChunk())

	o = elementwise.NewOptions(elementwise.WithWorkers(4), elementwise.WithMinChunk(10))
	assert.Equal(t, 4, o.Workers())
	assert.Equal(t, 10, o.MinChunk())

	assert.Panics(t, func() { elementwise.WithWorkers(0) })
	assert.Panics(t, func() { elementwise.WithMinChunk(-3) })
}
