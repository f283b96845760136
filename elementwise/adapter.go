// SPDX-License-Identifier: MIT

package elementwise

import "github.com/katalvlaran/lvstats/numeric"

// Adapter binds a concrete container type C holding T values to the dispatch
// layer. Indices are flat and row-major: i = row*cols + col.
type Adapter[C any, T numeric.Float] interface {
	// Size returns the container's extents; vectors report (n, 1).
	Size(c C) (rows, cols int)
	// Get returns element i, 0 <= i < rows*cols.
	Get(c C, i int) T
	// Set stores v at element i.
	Set(c C, i int, v T)
	// Make returns a new zero-filled container of the given extents.
	Make(rows, cols int) C
}

// Contiguous is implemented by adapters whose containers expose a flat
// row-major backing slice. Values may return nil (or a short slice) when a
// particular container is not contiguous; Map then uses Get/Set.
type Contiguous[C any, T numeric.Float] interface {
	Values(c C) []T
}

// SliceAdapter adapts a plain []T as an n×1 container.
type SliceAdapter[T numeric.Float] struct{}

// Size returns (len(s), 1).
func (SliceAdapter[T]) Size(s []T) (rows, cols int) { return len(s), 1 }

// Get returns s[i].
func (SliceAdapter[T]) Get(s []T, i int) T { return s[i] }

// Set stores s[i] = v.
func (SliceAdapter[T]) Set(s []T, i int, v T) { s[i] = v }

// Make returns a slice of rows*cols zeros.
func (SliceAdapter[T]) Make(rows, cols int) []T { return make([]T, rows*cols) }

// Values returns s itself.
func (SliceAdapter[T]) Values(s []T) []T { return s }
