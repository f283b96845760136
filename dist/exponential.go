// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Exponential has density Rate·e^(-Rate·x) on x >= 0.
//
// Valid parameters: Rate > 0 finite. x < 0 → density 0; x = 0 → Rate.
type Exponential[T numeric.Float] struct {
	Rate T
}

func (e Exponential[T]) valid() bool { return positive(e.Rate) }

// Density returns Rate·e^(-Rate·x).
func (e Exponential[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !e.valid() {
		return numeric.NaN[T]()
	}
	if x < 0 {
		return maybeLog(T(0), logForm)
	}
	if logForm {
		return numeric.Log(e.Rate) - e.Rate*x
	}
	return e.Rate * numeric.Exp(-e.Rate*x)
}

// CDF returns 1 - e^(-Rate·x).
func (e Exponential[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !e.valid() {
		return numeric.NaN[T]()
	}
	if x <= 0 {
		return maybeLog(T(0), logForm)
	}
	if logForm {
		return numeric.Log1mExp(-e.Rate * x)
	}
	return -numeric.Expm1(-e.Rate * x)
}

// Quantile returns -ln(1-p)/Rate.
func (e Exponential[T]) Quantile(p T) T {
	if !e.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, numeric.Inf[T](1)); ok {
		return v
	}
	return -numeric.Log1p(-p) / e.Rate
}

// Support returns [0, +Inf).
func (e Exponential[T]) Support() (lo, hi T) {
	if !e.valid() {
		return nanSupport[T]()
	}
	return 0, numeric.Inf[T](1)
}

// Rand draws one exponential variate.
func (e Exponential[T]) Rand(src rand.Source) T {
	if !e.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Exponential{Rate: float64(e.Rate), Src: src}.Rand())
}
