// SPDX-License-Identifier: MIT

// Package matrix: container adapters for package elementwise.
package matrix

import (
	"github.com/katalvlaran/lvstats/elementwise"
	"github.com/katalvlaran/lvstats/numeric"
)

var (
	_ elementwise.Adapter[*Dense[float64], float64]    = DenseAdapter[float64]{}
	_ elementwise.Contiguous[*Dense[float64], float64] = DenseAdapter[float64]{}
	_ elementwise.Adapter[Matrix[float32], float32]    = MatrixAdapter[float32]{}
)

// DenseAdapter binds *Dense[T] to elementwise.Map. It exposes the backing
// slice, so Map takes the contiguous fast path. Writes made through the
// adapter bypass the numeric policy of the destination.
type DenseAdapter[T numeric.Float] struct {
	// Opts are applied to every matrix returned by Make.
	Opts []Option
}

// Size returns (rows, cols); a nil matrix reports (0, 0).
func (DenseAdapter[T]) Size(m *Dense[T]) (rows, cols int) {
	if m == nil {
		return 0, 0
	}

	return m.r, m.c
}

// Get returns the element at flat row-major index i.
func (DenseAdapter[T]) Get(m *Dense[T], i int) T { return m.data[i] }

// Set stores v at flat row-major index i.
func (DenseAdapter[T]) Set(m *Dense[T], i int, v T) { m.data[i] = v }

// Make returns a zero rows×cols matrix; zero extents are allowed.
func (a DenseAdapter[T]) Make(rows, cols int) *Dense[T] {
	return newDenseZeroOK[T](rows, cols, a.Opts...)
}

// Values returns the backing slice (nil for a nil matrix).
func (DenseAdapter[T]) Values(m *Dense[T]) []T {
	if m == nil {
		return nil
	}

	return m.data
}

// MatrixAdapter binds any Matrix[T] implementation through At/Set. It is the
// generic fallback: no fast path, one interface call per element.
// Out-of-range accesses cannot occur under Map, so At/Set errors are dropped.
// A *Dense[T] destination is written directly, so NaN and ±Inf results
// reach it even under WithValidateNaNInf, as with DenseAdapter.
type MatrixAdapter[T numeric.Float] struct {
	// Opts are applied to every matrix returned by Make.
	Opts []Option
}

// Size returns (Rows, Cols); nil matrices report (0, 0).
func (MatrixAdapter[T]) Size(m Matrix[T]) (rows, cols int) {
	if ValidateNotNil(m) != nil {
		return 0, 0
	}

	return m.Rows(), m.Cols()
}

// Get returns the element at flat row-major index i.
func (MatrixAdapter[T]) Get(m Matrix[T], i int) T {
	c := m.Cols()
	v, _ := m.At(i/c, i%c)

	return v
}

// Set stores v at flat row-major index i.
func (MatrixAdapter[T]) Set(m Matrix[T], i int, v T) {
	if d, ok := m.(*Dense[T]); ok {
		d.data[i] = v
		return
	}
	c := m.Cols()
	_ = m.Set(i/c, i%c, v)
}

// Make returns a *Dense[T] as a Matrix[T]; zero extents are allowed.
func (a MatrixAdapter[T]) Make(rows, cols int) Matrix[T] {
	return newDenseZeroOK[T](rows, cols, a.Opts...)
}
