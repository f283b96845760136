// SPDX-License-Identifier: MIT

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvstats/numeric"
)

// Cauchy is the Cauchy (Lorentz) distribution with location Mu and scale Sigma.
//
// Valid parameters: Mu finite, Sigma > 0 finite.
type Cauchy[T numeric.Float] struct {
	Mu    T
	Sigma T
}

func (c Cauchy[T]) valid() bool { return numeric.IsFinite(c.Mu) && positive(c.Sigma) }

// Density returns 1 / (πσ(1 + z²)).
func (c Cauchy[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !c.valid() {
		return numeric.NaN[T]()
	}
	z := (x - c.Mu) / c.Sigma
	ld := -lnPi - numeric.Log(c.Sigma) - numeric.Log1p(z*z)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns 1/2 + atan(z)/π. Below the median it uses atan(-1/z)/π, which
// keeps relative precision in the lower tail.
func (c Cauchy[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !c.valid() {
		return numeric.NaN[T]()
	}
	z := (x - c.Mu) / c.Sigma
	var v T
	if z < -1 {
		v = numeric.Atan(-1/z) / math.Pi
	} else {
		v = T(0.5) + numeric.Atan(z)/math.Pi
	}
	return maybeLog(v, logForm)
}

// Quantile returns Mu + Sigma·tan(π(p - 1/2)).
func (c Cauchy[T]) Quantile(p T) T {
	if !c.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, numeric.Inf[T](-1), numeric.Inf[T](1)); ok {
		return v
	}
	return c.Mu + c.Sigma*numeric.Tan(math.Pi*(p-T(0.5)))
}

// Support returns (-Inf, +Inf).
func (c Cauchy[T]) Support() (lo, hi T) {
	if !c.valid() {
		return nanSupport[T]()
	}
	return numeric.Inf[T](-1), numeric.Inf[T](1)
}

// Rand draws one Cauchy variate by inversion.
func (c Cauchy[T]) Rand(src rand.Source) T {
	if !c.valid() {
		return numeric.NaN[T]()
	}
	return c.Quantile(T(uniform01(src)))
}
