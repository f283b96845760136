// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// LogNormal is the distribution of e^Y for Y ~ Normal(Mu, Sigma).
//
// Valid parameters: Mu finite, Sigma > 0 finite. x <= 0 has density 0 and CDF 0.
type LogNormal[T numeric.Float] struct {
	Mu    T
	Sigma T
}

func (l LogNormal[T]) valid() bool {
	return numeric.IsFinite(l.Mu) && positive(l.Sigma)
}

// Density returns φ(z)/(Sigma·x) with z = (ln x - Mu)/Sigma.
func (l LogNormal[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	if x <= 0 || numeric.IsInf(x, 1) {
		return maybeLog(T(0), logForm)
	}
	lx := numeric.Log(x)
	z := (lx - l.Mu) / l.Sigma
	ld := stdNormalLogDensity(z) - numeric.Log(l.Sigma) - lx
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns Φ((ln x - Mu)/Sigma).
func (l LogNormal[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x <= 0:
		return maybeLog(T(0), logForm)
	case numeric.IsInf(x, 1):
		return maybeLog(T(1), logForm)
	}
	z := (numeric.Log(x) - l.Mu) / l.Sigma
	if logForm {
		return stdNormalLogCDF(z)
	}
	return stdNormalCDF(z)
}

// Quantile returns exp(Mu + Sigma·Φ⁻¹(p)).
func (l LogNormal[T]) Quantile(p T) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, numeric.Inf[T](1)); ok {
		return v
	}
	return numeric.Exp(l.Mu + l.Sigma*stdNormalQuantile(p))
}

// Support returns [0, +Inf).
func (l LogNormal[T]) Support() (lo, hi T) {
	if !l.valid() {
		return nanSupport[T]()
	}
	return 0, numeric.Inf[T](1)
}

// Rand draws one log-normal variate.
func (l LogNormal[T]) Rand(src rand.Source) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.LogNormal{Mu: float64(l.Mu), Sigma: float64(l.Sigma), Src: src}.Rand())
}
