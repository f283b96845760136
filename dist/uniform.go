// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Uniform is the continuous uniform distribution on [Min, Max].
//
// Valid parameters: Min < Max, both finite. x outside [Min, Max] → density 0.
type Uniform[T numeric.Float] struct {
	Min T
	Max T
}

func (u Uniform[T]) valid() bool { return finite(u.Min, u.Max) && u.Min < u.Max }

// Density returns 1/(Max-Min) inside [Min, Max] and 0 outside.
func (u Uniform[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !u.valid() {
		return numeric.NaN[T]()
	}
	if x < u.Min || x > u.Max {
		return maybeLog(T(0), logForm)
	}
	if logForm {
		return -numeric.Log(u.Max - u.Min)
	}
	return 1 / (u.Max - u.Min)
}

// CDF returns (x-Min)/(Max-Min) clamped into [0,1].
func (u Uniform[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !u.valid() {
		return numeric.NaN[T]()
	}
	return maybeLog(numeric.Clamp((x-u.Min)/(u.Max-u.Min), 0, 1), logForm)
}

// Quantile returns Min + p·(Max-Min).
func (u Uniform[T]) Quantile(p T) T {
	if !u.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, u.Min, u.Max); ok {
		return v
	}
	return u.Min + p*(u.Max-u.Min)
}

// Support returns [Min, Max].
func (u Uniform[T]) Support() (lo, hi T) {
	if !u.valid() {
		return nanSupport[T]()
	}
	return u.Min, u.Max
}

// Rand draws one uniform variate.
func (u Uniform[T]) Rand(src rand.Source) T {
	if !u.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Uniform{Min: float64(u.Min), Max: float64(u.Max), Src: src}.Rand())
}
