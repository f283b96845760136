// SPDX-License-Identifier: MIT

// Package matrix: Dense implementation.
// Dense is a row-major, bounds-checked, generic matrix used as the native
// container of the elementwise dispatch layer.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstats/numeric"
)

// ctx tags for error wrapping (no magic strings).
const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
)

// Format literals used by String/Format.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with the method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// The zero value is not usable; construct with NewDense or NewDenseFrom.
type Dense[T numeric.Float] struct {
	r, c           int
	data           []T
	validateNaNInf bool
}

var _ Matrix[float64] = (*Dense[float64])(nil)

// NewDense allocates a zero-filled r×c matrix.
//
// Implementation:
//   - Stage 1: Reject r<=0 or c<=0 with ErrInvalidDimensions.
//   - Stage 2: Resolve options and allocate r*c elements.
//
// Complexity: O(r*c) time and space.
func NewDense[T numeric.Float](r, c int, opts ...Option) (*Dense[T], error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrInvalidDimensions)
	}

	return newDenseZeroOK[T](r, c, opts...), nil
}

// NewDenseFrom wraps data (row-major, len r*c) without copying.
// Returns ErrInvalidDimensions for r<=0 or c<=0, ErrDimensionMismatch when
// len(data) != r*c and ErrNaNInf when validation is on and data holds a
// non-finite value.
func NewDenseFrom[T numeric.Float](r, c int, data []T, opts ...Option) (*Dense[T], error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", r, c, ErrInvalidDimensions)
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len %d: %w", r, c, len(data), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if !numeric.IsFinite(v) {
				return nil, fmt.Errorf("NewDenseFrom: %w", denseErrorf(ctxSet, k/c, k%c, ErrNaNInf))
			}
		}
	}

	return &Dense[T]{r: r, c: c, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// newDenseZeroOK is the internal constructor: it accepts r==0 or c==0 so
// that adapters can represent empty containers.
func newDenseZeroOK[T numeric.Float](r, c int, opts ...Option) *Dense[T] {
	o := gatherOptions(opts...)

	return &Dense[T]{r: r, c: c, data: make([]T, r*c), validateNaNInf: o.validateNaNInf}
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf returns the flat index of (i, j) and whether it is in bounds.
func (m *Dense[T]) indexOf(i, j int) (int, bool) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, false
	}

	return i*m.c + j, true
}

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Dense[T]) At(i, j int) (T, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	k, ok := m.indexOf(i, j)
	if !ok {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set stores v at (i, j). Returns ErrOutOfRange for bad indices and
// ErrNaNInf when the matrix validates finite values and v is not finite.
func (m *Dense[T]) Set(i, j int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	k, ok := m.indexOf(i, j)
	if !ok {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && !numeric.IsFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Clone returns an independent deep copy carrying the same numeric policy.
func (m *Dense[T]) Clone() Matrix[T] {
	return m.clone()
}

func (m *Dense[T]) clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data, validateNaNInf: m.validateNaNInf}
}

// Values returns the row-major backing slice. Writes through it bypass the
// numeric policy.
func (m *Dense[T]) Values() []T { return m.data }

// Apply replaces every element v at (i, j) with f(i, j, v), row by row.
//
// Implementation:
//   - Stage 1: Iterate rows then columns (deterministic order).
//   - Stage 2: Enforce the numeric policy on each new value; on violation
//     return ErrNaNInf wrapped with the coordinates. Elements before the
//     offending one have already been written.
//
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !numeric.IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String renders the matrix one row per line as "[a, b, c]" using the
// shortest representation of each value.
func (m *Dense[T]) String() string {
	return Format[T](m)
}

// Format renders any Matrix one row per line as "[a, b, c]".
// WithDigits selects the number of significant digits; the default is the
// shortest representation that round-trips. A nil matrix renders as "".
//
// Complexity: O(rows*cols).
func Format[T numeric.Float](m Matrix[T], opts ...Option) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	o := gatherOptions(opts...)
	bits := 64
	if numeric.Is32[T]() {
		bits = 32
	}

	var b strings.Builder
	var buf []byte
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			buf = strconv.AppendFloat(buf[:0], float64(v), 'g', o.digits, bits)
			b.Write(buf)
			if j+1 < m.Cols() {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
