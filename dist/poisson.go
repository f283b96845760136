// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/invert"
	"github.com/katalvlaran/lvstats/numeric"
	"github.com/katalvlaran/lvstats/special"
)

// Poisson is the Poisson distribution with mean Rate.
//
// Parameter classes:
//   - Rate NaN or < 0 (including -Inf) → NaN from every method.
//   - Rate = 0 → point mass at 0.
//   - Rate = +Inf → all mass escapes to infinity: mass 0 and CDF 0 at every
//     finite x, Quantile(p) = +Inf for p > 0.
//
// Non-integer or negative x → mass 0.
type Poisson[T numeric.Float] struct {
	Rate T
}

func (p Poisson[T]) valid() bool { return p.Rate >= 0 }

// Density returns Rate^x e^(-Rate) / x!, as exp(x ln Rate - Rate - lnΓ(x+1)).
func (p Poisson[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !p.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case !numeric.IsInteger(x) || x < 0 || numeric.IsInf(p.Rate, 1):
		return maybeLog(T(0), logForm)
	case p.Rate == 0:
		return maybeLog(indicator[T](x == 0), logForm)
	}
	ld := x*numeric.Log(p.Rate) - p.Rate - numeric.Lgamma(x+1)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns P(X <= floor(x)) = Q(floor(x)+1, Rate).
func (p Poisson[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !p.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0 || numeric.IsInf(p.Rate, 1):
		return maybeLog(T(0), logForm)
	case p.Rate == 0 || numeric.IsInf(x, 1):
		return maybeLog(T(1), logForm)
	}
	k := numeric.Floor(x)
	if logForm {
		return special.LogIncGammaUpper(k+1, p.Rate)
	}
	return special.IncGammaUpper(k+1, p.Rate)
}

// Quantile returns the smallest integer k with CDF(k) >= q, searched with
// invert.SolveDiscrete from the mean.
func (p Poisson[T]) Quantile(q T) T {
	if !p.valid() {
		return numeric.NaN[T]()
	}
	if numeric.IsInf(p.Rate, 1) {
		if v, ok := quantileEdge(q, 0, numeric.Inf[T](1)); ok {
			return v
		}
		return numeric.Inf[T](1)
	}
	cdf := func(k T) T { return p.CDF(k, false) }
	return invert.SolveDiscrete(cdf, q, 0, numeric.Inf[T](1), p.Rate)
}

// Support returns [0, +Inf).
func (p Poisson[T]) Support() (lo, hi T) {
	if !p.valid() {
		return nanSupport[T]()
	}
	return 0, numeric.Inf[T](1)
}

// Rand draws one Poisson count.
func (p Poisson[T]) Rand(src rand.Source) T {
	switch {
	case !p.valid():
		return numeric.NaN[T]()
	case p.Rate == 0:
		return 0
	case numeric.IsInf(p.Rate, 1):
		return numeric.Inf[T](1)
	}
	return T(distuv.Poisson{Lambda: float64(p.Rate), Src: src}.Rand())
}
