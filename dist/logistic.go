// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvstats/numeric"
)

// Logistic has CDF 1 / (1 + e^(-(x-Mu)/Scale)).
//
// Valid parameters: Mu finite, Scale > 0 finite.
type Logistic[T numeric.Float] struct {
	Mu    T
	Scale T
}

func (l Logistic[T]) valid() bool { return numeric.IsFinite(l.Mu) && positive(l.Scale) }

// Density returns e^(-z) / (Scale·(1 + e^(-z))²), evaluated through |z| so
// the exponential never overflows.
func (l Logistic[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	a := numeric.Abs((x - l.Mu) / l.Scale)
	ld := -a - numeric.Log(l.Scale) - 2*numeric.Log1p(numeric.Exp(-a))
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns the logistic function of z = (x-Mu)/Scale.
func (l Logistic[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	z := (x - l.Mu) / l.Scale
	if logForm {
		// ln σ(z) = -ln(1 + e^(-z)) = z - ln(1 + e^z).
		if z < 0 {
			return z - numeric.Log1p(numeric.Exp(z))
		}
		return -numeric.Log1p(numeric.Exp(-z))
	}
	if z < 0 {
		e := numeric.Exp(z)
		return e / (1 + e)
	}
	return 1 / (1 + numeric.Exp(-z))
}

// Quantile returns Mu + Scale·ln(p/(1-p)).
func (l Logistic[T]) Quantile(p T) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, numeric.Inf[T](-1), numeric.Inf[T](1)); ok {
		return v
	}
	return l.Mu + l.Scale*(numeric.Log(p)-numeric.Log1p(-p))
}

// Support returns (-Inf, +Inf).
func (l Logistic[T]) Support() (lo, hi T) {
	if !l.valid() {
		return nanSupport[T]()
	}
	return numeric.Inf[T](-1), numeric.Inf[T](1)
}

// Rand draws one logistic variate by inversion.
func (l Logistic[T]) Rand(src rand.Source) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	return l.Quantile(T(uniform01(src)))
}
