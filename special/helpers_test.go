// SPDX-License-Identifier: MIT

package special_test

import (
	"math"
	"testing"
)

// relClose reports |got-want| <= tol*|want|. Values in or near the subnormal
// range carry no relative precision, so there both only need to be tiny.
func relClose(got, want, tol float64) bool {
	if math.Abs(want) < 1e-290 {
		return math.Abs(got) < 1e-280
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}

// solvesTarget reports whether x solves f(x) = p as well as float64 allows:
// either the residual is within tol relative to the smaller tail, or p lies
// between f at the two neighbours of x.
func solvesTarget(f func(float64) float64, x, p, tol float64) bool {
	if math.Abs(f(x)-p) <= tol*math.Min(p, 1-p) {
		return true
	}
	lo := f(math.Max(math.Nextafter(x, math.Inf(-1)), 0))
	hi := f(math.Nextafter(x, math.Inf(1)))
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= p && p <= hi
}

func mustNaN(t *testing.T, name string, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Fatalf("%s: want NaN, got %v", name, v)
	}
}
