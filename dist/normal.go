// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Normal is the Gaussian distribution with mean Mu and standard deviation Sigma.
//
// Valid parameters: Mu finite, Sigma > 0 finite.
type Normal[T numeric.Float] struct {
	Mu    T
	Sigma T
}

func (n Normal[T]) valid() bool {
	return numeric.IsFinite(n.Mu) && positive(n.Sigma)
}

// Density returns φ((x-Mu)/Sigma)/Sigma.
func (n Normal[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !n.valid() {
		return numeric.NaN[T]()
	}
	z := (x - n.Mu) / n.Sigma
	ld := stdNormalLogDensity(z) - numeric.Log(n.Sigma)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns Φ((x-Mu)/Sigma). The log form stays finite in the far lower
// tail through the asymptotic expansion of ln Φ.
func (n Normal[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !n.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case numeric.IsInf(x, -1):
		return maybeLog(T(0), logForm)
	case numeric.IsInf(x, 1):
		return maybeLog(T(1), logForm)
	}
	z := (x - n.Mu) / n.Sigma
	if logForm {
		return stdNormalLogCDF(z)
	}
	return stdNormalCDF(z)
}

// Quantile returns Mu - Sigma·√2·erfcinv(2p).
func (n Normal[T]) Quantile(p T) T {
	if !n.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, numeric.Inf[T](-1), numeric.Inf[T](1)); ok {
		return v
	}
	return n.Mu + n.Sigma*stdNormalQuantile(p)
}

// Support returns (-Inf, +Inf).
func (n Normal[T]) Support() (lo, hi T) {
	if !n.valid() {
		return nanSupport[T]()
	}
	return numeric.Inf[T](-1), numeric.Inf[T](1)
}

// Rand draws one normal variate.
func (n Normal[T]) Rand(src rand.Source) T {
	if !n.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Normal{Mu: float64(n.Mu), Sigma: float64(n.Sigma), Src: src}.Rand())
}
