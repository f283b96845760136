// SPDX-License-Identifier: MIT

// Package matrix provides the generic dense container used by lvstats to
// evaluate distributions over two-dimensional inputs.
//
// The matrix package provides:
//
//   - Dense[T], a row-major, bounds-checked matrix over float32 or float64
//     with an optional finite-value policy (WithValidateNaNInf).
//   - Format / String, printing one "[a, b, c]" line per row.
//   - DenseAdapter and MatrixAdapter, binding Dense and any Matrix
//     implementation to package elementwise.
//
// Accessors never panic on user input: they return sentinel errors
// (ErrOutOfRange, ErrInvalidDimensions, ...) wrapped with coordinates.
//
// Example:
//
//	x, _ := matrix.NewDenseFrom(2, 2, []float64{0.1, 0.5, 0.9, 0.99})
//	a := matrix.DenseAdapter[float64]{}
//	q := dist.QuantileEach[*matrix.Dense[float64], *matrix.Dense[float64], float64, float64](
//		dist.Normal[float64]{Sigma: 1}, x, a, a)
//	fmt.Print(q)
package matrix
