// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
	"github.com/katalvlaran/lvstats/special"
)

// F is Snedecor's F distribution with DF1 and DF2 degrees of freedom.
// Its CDF is I_u(DF1/2, DF2/2) with u = DF1·x / (DF1·x + DF2).
//
// Valid parameters: DF1, DF2 > 0 finite.
// Boundary: x < 0 → density 0; x = 0 → +Inf if DF1 < 2, 1 if DF1 = 2, 0 if DF1 > 2.
type F[T numeric.Float] struct {
	DF1 T
	DF2 T
}

func (f F[T]) valid() bool { return positive(f.DF1) && positive(f.DF2) }

// Density returns the F density at x.
func (f F[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !f.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0 || numeric.IsInf(x, 1):
		return maybeLog(T(0), logForm)
	case x == 0:
		return maybeLog(gammaAtZero(f.DF1/2, 1), logForm)
	}
	h1, h2 := f.DF1/2, f.DF2/2
	ld := h1*numeric.Log(f.DF1) + h2*numeric.Log(f.DF2) + (h1-1)*numeric.Log(x) -
		(h1+h2)*numeric.Log(f.DF2+f.DF1*x) - special.LogBeta(h1, h2)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns I_u(DF1/2, DF2/2). When u is above one half the complement is
// evaluated through 1 - u = DF2 / (DF1·x + DF2) instead.
func (f F[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !f.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x <= 0:
		return maybeLog(T(0), logForm)
	case numeric.IsInf(x, 1):
		return maybeLog(T(1), logForm)
	}
	h1, h2 := f.DF1/2, f.DF2/2
	den := f.DF1*x + f.DF2
	if f.DF1*x <= f.DF2 {
		u := f.DF1 * x / den
		if logForm {
			return special.LogIncBeta(h1, h2, u)
		}
		return special.IncBeta(h1, h2, u)
	}
	v := f.DF2 / den
	if logForm {
		return special.LogIncBetaUpper(h2, h1, v)
	}
	return special.IncBetaUpper(h2, h1, v)
}

// Quantile returns DF2·u / (DF1·(1-u)) with u = I⁻¹(DF1/2, DF2/2, p).
func (f F[T]) Quantile(p T) T {
	if !f.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, numeric.Inf[T](1)); ok {
		return v
	}
	u := special.IncBetaInv(f.DF1/2, f.DF2/2, p)
	if u >= 1 {
		return numeric.Inf[T](1)
	}
	return f.DF2 * u / (f.DF1 * (1 - u))
}

// Support returns [0, +Inf).
func (f F[T]) Support() (lo, hi T) {
	if !f.valid() {
		return nanSupport[T]()
	}
	return 0, numeric.Inf[T](1)
}

// Rand draws one F variate.
func (f F[T]) Rand(src rand.Source) T {
	if !f.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.F{D1: float64(f.DF1), D2: float64(f.DF2), Src: src}.Rand())
}
