// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/matrix"
)

// TestNewDenseInvalidDimensions ensures that the constructors reject non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, rc := range [][2]int{{0, 5}, {5, 0}, {-1, 2}, {2, -3}} {
		_, err := matrix.NewDense[float64](rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense%v", rc)

		_, err = matrix.NewDenseFrom(rc[0], rc[1], []float64{})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDenseFrom%v", rc)
	}
}

// TestNewDenseFromLength checks the backing-slice length contract.
func TestNewDenseFromLength(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	data[4] = 50 // no copy: the matrix shares data
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 50.0, v)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the dimensions.
func TestRowsCols(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4, nil)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Len(t, m.Values(), 12)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, nil)
	for _, ij := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1.23), matrix.ErrOutOfRange, "Set%v", ij)
	}
	_, err := m.At(5, 7)
	require.EqualError(t, err, "Dense.At(5,7): matrix: index out of range")
}

// TestNilReceiver ensures a nil *Dense reports ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense[float64]
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Equal(t, "", m.String())
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3, nil)
	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
	require.Equal(t, 7.89, m.Values()[5]) // row-major
}

// TestNaNInfPolicy covers the opt-in finite-value validation.
func TestNaNInfPolicy(t *testing.T) {
	t.Parallel()

	lax := MustDense(t, 1, 2, nil)
	require.NoError(t, lax.Set(0, 0, math.NaN()))
	require.NoError(t, lax.Set(0, 1, math.Inf(-1)))

	strict, err := matrix.NewDense[float64](1, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 1, 3))

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// the policy travels with clones
	c := strict.Clone()
	require.ErrorIs(t, c.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestClone ensures Clone returns an independent deep copy.
func TestClone(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
	got, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 100.0, got)
}

// TestApply checks visiting order, coordinates and the Apply policy error.
func TestApply(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3, nil)
	var order []float64
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 {
		order = append(order, v)
		return float64(10*i + j)
	}))
	require.Len(t, order, 6)
	assert.Equal(t, []float64{0, 1, 2, 10, 11, 12}, m.Values())

	strict, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	err = strict.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return -v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.EqualError(t, err, "Dense.Apply(1,0): matrix: NaN or Inf encountered")
	assert.Equal(t, []float64{-1, -2, 3, 4}, strict.Values())
}

// TestString checks the one-row-per-line rendering, including sentinels.
func TestString(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3, []float64{1, 2.5, -3, 0.1, math.NaN(), math.Inf(1)})
	require.Equal(t, "[1, 2.5, -3]\n[0.1, NaN, +Inf]\n", m.String())

	f, err := matrix.NewDenseFrom(1, 2, []float32{0.1, 1e-7})
	require.NoError(t, err)
	require.Equal(t, "[0.1, 1e-07]\n", f.String())
}

// TestFormatDigits checks WithDigits and Format over a non-Dense Matrix.
func TestFormatDigits(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 3, []float64{1.0 / 3, 2, 123456})
	require.Equal(t, "[0.333, 2, 1.23e+05]\n", matrix.Format[float64](hide{m}, matrix.WithDigits(3)))
	require.Equal(t, "", matrix.Format[float64](nil))
}
