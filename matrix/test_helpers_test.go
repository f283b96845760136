// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Dense and adapter tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force the At/Set (fallback) paths.
type hide struct{ matrix.Matrix[float64] }

// MustDense builds an r×c Dense filled row-major from vals (zeros when vals
// is nil) and fails the test on error.
func MustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense[float64] {
	t.Helper()
	if vals == nil {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)
	return m
}
