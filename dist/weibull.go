// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Weibull has CDF 1 - exp(-(x/Scale)^Shape) on x >= 0.
//
// Valid parameters: Shape, Scale > 0 finite.
// Boundary: x < 0 → density 0; x = 0 → +Inf if Shape < 1, 1/Scale if Shape = 1, 0 if Shape > 1.
type Weibull[T numeric.Float] struct {
	Shape T
	Scale T
}

func (w Weibull[T]) valid() bool { return positive(w.Shape) && positive(w.Scale) }

// Density returns (k/λ)(x/λ)^(k-1) exp(-(x/λ)^k).
func (w Weibull[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !w.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0 || numeric.IsInf(x, 1):
		return maybeLog(T(0), logForm)
	case x == 0:
		return maybeLog(gammaAtZero(w.Shape, 1/w.Scale), logForm)
	}
	lz := numeric.Log(x / w.Scale)
	ld := numeric.Log(w.Shape/w.Scale) + (w.Shape-1)*lz - numeric.Exp(w.Shape*lz)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns 1 - exp(-(x/Scale)^Shape).
func (w Weibull[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !w.valid() {
		return numeric.NaN[T]()
	}
	if x <= 0 {
		return maybeLog(T(0), logForm)
	}
	h := numeric.Pow(x/w.Scale, w.Shape)
	if logForm {
		return numeric.Log1mExp(-h)
	}
	return -numeric.Expm1(-h)
}

// Quantile returns Scale·(-ln(1-p))^(1/Shape).
func (w Weibull[T]) Quantile(p T) T {
	if !w.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, numeric.Inf[T](1)); ok {
		return v
	}
	return w.Scale * numeric.Pow(-numeric.Log1p(-p), 1/w.Shape)
}

// Support returns [0, +Inf).
func (w Weibull[T]) Support() (lo, hi T) {
	if !w.valid() {
		return nanSupport[T]()
	}
	return 0, numeric.Inf[T](1)
}

// Rand draws one Weibull variate.
func (w Weibull[T]) Rand(src rand.Source) T {
	if !w.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Weibull{K: float64(w.Shape), Lambda: float64(w.Scale), Src: src}.Rand())
}
