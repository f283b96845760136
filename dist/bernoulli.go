// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Bernoulli takes the value 1 with probability Prob and 0 otherwise.
//
// Valid parameters: Prob in [0,1]. x not in {0, 1} → mass 0.
type Bernoulli[T numeric.Float] struct {
	Prob T
}

func (b Bernoulli[T]) valid() bool { return unitInterval(b.Prob) }

// Density returns the probability mass at x.
func (b Bernoulli[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	switch x {
	case 0:
		if logForm {
			return numeric.Log1p(-b.Prob)
		}
		return 1 - b.Prob
	case 1:
		return maybeLog(b.Prob, logForm)
	}
	return maybeLog(T(0), logForm)
}

// CDF returns 0 below 0, 1-Prob on [0,1) and 1 from 1 on.
func (b Bernoulli[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !b.valid() {
		return numeric.NaN[T]()
	}
	switch {
	case x < 0:
		return maybeLog(T(0), logForm)
	case x < 1:
		if logForm {
			return numeric.Log1p(-b.Prob)
		}
		return 1 - b.Prob
	}
	return maybeLog(T(1), logForm)
}

// Quantile returns 0 when p <= 1-Prob and 1 otherwise.
func (b Bernoulli[T]) Quantile(p T) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, 0, 1); ok {
		return v
	}
	if p <= 1-b.Prob {
		return 0
	}
	return 1
}

// Support returns [0, 1].
func (b Bernoulli[T]) Support() (lo, hi T) {
	if !b.valid() {
		return nanSupport[T]()
	}
	return 0, 1
}

// Rand draws 0 or 1.
func (b Bernoulli[T]) Rand(src rand.Source) T {
	if !b.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Bernoulli{P: float64(b.Prob), Src: src}.Rand())
}
