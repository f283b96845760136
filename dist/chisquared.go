// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/numeric"
)

// ChiSquared is the chi-squared distribution with DOF degrees of freedom,
// a Gamma with shape DOF/2 and scale 2.
//
// Valid parameters: DOF > 0 finite.
// Boundary: x < 0 → density 0; x = 0 → +Inf if DOF < 2, 1/2 if DOF = 2, 0 if DOF > 2.
type ChiSquared[T numeric.Float] struct {
	DOF T
}

func (c ChiSquared[T]) gamma() Gamma[T] { return Gamma[T]{Shape: c.DOF / 2, Scale: 2} }

// Density returns the chi-squared density at x.
func (c ChiSquared[T]) Density(x T, logForm bool) T { return c.gamma().Density(x, logForm) }

// CDF returns P(DOF/2, x/2).
func (c ChiSquared[T]) CDF(x T, logForm bool) T { return c.gamma().CDF(x, logForm) }

// Quantile returns 2·P⁻¹(DOF/2, p).
func (c ChiSquared[T]) Quantile(p T) T { return c.gamma().Quantile(p) }

// Support returns [0, +Inf).
func (c ChiSquared[T]) Support() (lo, hi T) { return c.gamma().Support() }

// Rand draws one chi-squared variate.
func (c ChiSquared[T]) Rand(src rand.Source) T {
	if !positive(c.DOF) {
		return numeric.NaN[T]()
	}
	return T(distuv.ChiSquared{K: float64(c.DOF), Src: src}.Rand())
}
