// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
	"github.com/katalvlaran/lvstats/special"
)

// Beta is the beta distribution on [0,1]:
//
//	f(x) = x^(α-1) (1-x)^(β-1) / B(α, β).
//
// Valid parameters: Alpha, Beta > 0 finite.
// Boundary: x outside [0,1] → density 0; x = 0 → +Inf if α < 1, β if α = 1,
// 0 if α > 1; x = 1 mirrors it with the roles of α and β swapped.
type Beta[T numeric.Float] struct {
	Alpha T
	Beta  T
}

func (b Beta[T]) valid() bool { return positive(b.Alpha) && positive(b.Beta) }

// Density returns the beta density at x.
func (b Beta[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0 || x > 1:
		return maybeLog(T(0), logForm)
	case x == 0:
		return maybeLog(gammaAtZero(b.Alpha, b.Beta), logForm)
	case x == 1:
		return maybeLog(gammaAtZero(b.Beta, b.Alpha), logForm)
	}
	ld := (b.Alpha-1)*numeric.Log(x) + (b.Beta-1)*numeric.Log1p(-x) - special.LogBeta(b.Alpha, b.Beta)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns I_x(α, β).
func (b Beta[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x <= 0:
		return maybeLog(T(0), logForm)
	case x >= 1:
		return maybeLog(T(1), logForm)
	}
	if logForm {
		return special.LogIncBeta(b.Alpha, b.Beta, x)
	}
	return special.IncBeta(b.Alpha, b.Beta, x)
}

// Quantile returns I⁻¹(α, β, p).
func (b Beta[T]) Quantile(p T) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, 1); ok {
		return v
	}
	return special.IncBetaInv(b.Alpha, b.Beta, p)
}

// Support returns [0, 1].
func (b Beta[T]) Support() (lo, hi T) {
	if !b.valid() {
		return nanSupport[T]()
	}
	return 0, 1
}

// Rand draws one beta variate.
func (b Beta[T]) Rand(src rand.Source) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Beta{Alpha: float64(b.Alpha), Beta: float64(b.Beta), Src: src}.Rand())
}
