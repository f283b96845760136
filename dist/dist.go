// SPDX-License-Identifier: MIT

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvstats/numeric"
)

// Distribution is the method set shared by every distribution in the package.
type Distribution[T numeric.Float] interface {
	Density(x T, logForm bool) T
	CDF(x T, logForm bool) T
	Quantile(p T) T
	Support() (lo, hi T)
	Rand(src rand.Source) T
}

// Constants shared by the normal-family evaluators.
const (
	lnSqrt2Pi = 0.91893853320467274178 // ln √(2π)
	lnPi      = 1.14472988584940017414 // ln π
	ln2       = math.Ln2

	// normalAsymptoticZ is where the lower-tail log CDF of the standard normal
	// switches from ln Φ(z) to its asymptotic expansion.
	normalAsymptoticZ = -37
)

// maybeLog returns v, or ln v when logForm is set. It serves boundary values
// that are already exact (0, 1, +Inf, a finite limit).
func maybeLog[T numeric.Float](v T, logForm bool) T {
	if logForm {
		return numeric.Log(v)
	}
	return v
}

// quantileEdge resolves the quantile sentinels shared by every distribution.
// ok is false when p lies strictly inside (0,1).
func quantileEdge[T numeric.Float](p, lo, hi T) (T, bool) {
	switch {
	case numeric.IsNaN(p) || p < 0 || p > 1:
		return numeric.NaN[T](), true
	case p == 0:
		return lo, true
	case p == 1:
		return hi, true
	}
	return 0, false
}

// nanSupport is the Support of a distribution with invalid parameters.
func nanSupport[T numeric.Float]() (T, T) {
	return numeric.NaN[T](), numeric.NaN[T]()
}

// finite reports whether every value is finite.
func finite[T numeric.Float](vs ...T) bool {
	for _, v := range vs {
		if !numeric.IsFinite(v) {
			return false
		}
	}
	return true
}

// positive reports whether v is a finite value > 0.
func positive[T numeric.Float](v T) bool {
	return v > 0 && numeric.IsFinite(v)
}

// unitInterval reports whether v lies in [0,1].
func unitInterval[T numeric.Float](v T) bool {
	return v >= 0 && v <= 1
}

// uniform01 draws a value in [0,1) from src, or from the global source when
// src is nil.
func uniform01(src rand.Source) float64 {
	if src == nil {
		return rand.Float64()
	}
	return rand.New(src).Float64()
}

// stdNormalCDF returns Φ(z).
func stdNormalCDF[T numeric.Float](z T) T {
	return numeric.Erfc(-z/math.Sqrt2) / 2
}

// stdNormalLogCDF returns ln Φ(z), finite far into the lower tail where Φ
// itself underflows.
func stdNormalLogCDF[T numeric.Float](z T) T {
	if z >= normalAsymptoticZ {
		return numeric.Log(stdNormalCDF(z))
	}
	z2 := z * z
	return -z2/2 - numeric.Log(-z) - lnSqrt2Pi + numeric.Log1p(-1/z2+3/(z2*z2))
}

// stdNormalLogDensity returns ln φ(z).
func stdNormalLogDensity[T numeric.Float](z T) T {
	return -z*z/2 - lnSqrt2Pi
}

// stdNormalQuantile returns Φ⁻¹(p) for p in [0,1].
func stdNormalQuantile[T numeric.Float](p T) T {
	return -math.Sqrt2 * numeric.Erfcinv(2*p)
}
