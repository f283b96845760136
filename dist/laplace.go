// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// Laplace is the double-exponential distribution with location Mu and scale Scale.
//
// Valid parameters: Mu finite, Scale > 0 finite.
type Laplace[T numeric.Float] struct {
	Mu    T
	Scale T
}

func (l Laplace[T]) valid() bool { return numeric.IsFinite(l.Mu) && positive(l.Scale) }

// Density returns exp(-|x-Mu|/Scale) / (2·Scale).
func (l Laplace[T]) Density(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	ld := -numeric.Abs(x-l.Mu)/l.Scale - numeric.Log(2*l.Scale)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns exp(z)/2 below Mu and 1 - exp(-z)/2 above, z = (x-Mu)/Scale.
func (l Laplace[T]) CDF(x T, logForm bool) T {
	if numeric.IsNaN(x) || !l.valid() {
		return numeric.NaN[T]()
	}
	z := (x - l.Mu) / l.Scale
	if z < 0 {
		if logForm {
			return z - ln2
		}
		return numeric.Exp(z) / 2
	}
	if logForm {
		return numeric.Log1p(-numeric.Exp(-z) / 2)
	}
	return 1 - numeric.Exp(-z)/2
}

// Quantile returns Mu + Scale·ln(2p) below the median and
// Mu - Scale·ln(2(1-p)) above it.
func (l Laplace[T]) Quantile(p T) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, numeric.Inf[T](-1), numeric.Inf[T](1)); ok {
		return v
	}
	if p < 0.5 {
		return l.Mu + l.Scale*numeric.Log(2*p)
	}
	return l.Mu - l.Scale*numeric.Log(2*(1-p))
}

// Support returns (-Inf, +Inf).
func (l Laplace[T]) Support() (lo, hi T) {
	if !l.valid() {
		return nanSupport[T]()
	}
	return numeric.Inf[T](-1), numeric.Inf[T](1)
}

// Rand draws one Laplace variate.
func (l Laplace[T]) Rand(src rand.Source) T {
	if !l.valid() {
		return numeric.NaN[T]()
	}
	return T(distuv.Laplace{Mu: float64(l.Mu), Scale: float64(l.Scale), Src: src}.Rand())
}
