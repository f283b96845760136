// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/invert"
	"github.com/katalvlaran/lvstats/numeric"
	"github.com/katalvlaran/lvstats/special"
)

// Binomial counts successes in N independent trials with success probability Prob.
//
// Valid parameters: N a non-negative integer, Prob in [0,1].
// Non-integer x or x outside [0, N] → mass 0. Prob = 0 and Prob = 1 are point
// masses at 0 and N.
type Binomial[T numeric.Float] struct {
	N    T
	Prob T
}

func (b Binomial[T]) valid() bool {
	return numeric.IsInteger(b.N) && b.N >= 0 && unitInterval(b.Prob)
}

// Density returns C(N, x)·Prob^x·(1-Prob)^(N-x).
func (b Binomial[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	if !numeric.IsInteger(x) || x < 0 || x > b.N {
		return maybeLog(T(0), logForm)
	}
	switch b.Prob {
	case 0:
		return maybeLog(indicator[T](x == 0), logForm)
	case 1:
		return maybeLog(indicator[T](x == b.N), logForm)
	}
	ld := numeric.Lgamma(b.N+1) - numeric.Lgamma(x+1) - numeric.Lgamma(b.N-x+1) +
		x*numeric.Log(b.Prob) + (b.N-x)*numeric.Log1p(-b.Prob)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns P(X <= floor(x)) = 1 - I_Prob(k+1, N-k).
func (b Binomial[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0:
		return maybeLog(T(0), logForm)
	case x >= b.N:
		return maybeLog(T(1), logForm)
	}
	k := numeric.Floor(x)
	if logForm {
		return special.LogIncBetaUpper(k+1, b.N-k, b.Prob)
	}
	return special.IncBetaUpper(k+1, b.N-k, b.Prob)
}

// Quantile returns the smallest k in [0, N] with CDF(k) >= p, searched with
// invert.SolveDiscrete from the mean.
func (b Binomial[T]) Quantile(p T) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	cdf := func(k T) T { return b.CDF(k, false) }
	return invert.SolveDiscrete(cdf, p, 0, b.N, b.N*b.Prob)
}

// Support returns [0, N].
func (b Binomial[T]) Support() (lo, hi T) {
	if !b.valid() {
		return nanSupport[T]()
	}
	return 0, b.N
}

// Rand draws one binomial count.
func (b Binomial[T]) Rand(src rand.Source) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	if b.N == 0 {
		return 0
	}
	return T(distuv.Binomial{N: float64(b.N), P: float64(b.Prob), Src: src}.Rand())
}

func indicator[T numeric.Float](ok bool) T {
	if ok {
		return 1
	}
	return 0
}
