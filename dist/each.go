// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvstats/elementwise"
	"github.com/katalvlaran/lvstats/numeric"
)

// DensityEach evaluates d.Density at every element of in and returns a
// container of the same shape made by ao. Input elements are converted to
// the distribution's precision TO first.
func DensityEach[CI, CO any, TI, TO numeric.Float](
	d Distribution[TO], in CI, ai elementwise.Adapter[CI, TI], ao elementwise.Adapter[CO, TO],
	logForm bool, opts ...elementwise.Option,
) CO {
	return elementwise.Map(in, ai, ao, func(x TO) TO { return d.Density(x, logForm) }, opts...)
}

// CDFEach evaluates d.CDF at every element of in.
func CDFEach[CI, CO any, TI, TO numeric.Float](
	d Distribution[TO], in CI, ai elementwise.Adapter[CI, TI], ao elementwise.Adapter[CO, TO],
	logForm bool, opts ...elementwise.Option,
) CO {
	return elementwise.Map(in, ai, ao, func(x TO) TO { return d.CDF(x, logForm) }, opts...)
}

// QuantileEach evaluates d.Quantile at every probability in in.
func QuantileEach[CI, CO any, TI, TO numeric.Float](
	d Distribution[TO], in CI, ai elementwise.Adapter[CI, TI], ao elementwise.Adapter[CO, TO],
	opts ...elementwise.Option,
) CO {
	return elementwise.Map(in, ai, ao, d.Quantile, opts...)
}

// DensitySlice is DensityEach over plain slices.
func DensitySlice[T numeric.Float](d Distribution[T], xs []T, logForm bool, opts ...elementwise.Option) []T {
	sa := elementwise.SliceAdapter[T]{}
	return DensityEach(d, xs, sa, sa, logForm, opts...)
}

// CDFSlice is CDFEach over plain slices.
func CDFSlice[T numeric.Float](d Distribution[T], xs []T, logForm bool, opts ...elementwise.Option) []T {
	sa := elementwise.SliceAdapter[T]{}
	return CDFEach(d, xs, sa, sa, logForm, opts...)
}

// QuantileSlice is QuantileEach over plain slices.
func QuantileSlice[T numeric.Float](d Distribution[T], ps []T, opts ...elementwise.Option) []T {
	sa := elementwise.SliceAdapter[T]{}
	return QuantileEach(d, ps, sa, sa, opts...)
}

// Sample returns a rows×cols container made by a and filled in index order
// with variates drawn from src. Sources are not safe for concurrent use, so
// sampling always runs on the calling goroutine.
func Sample[C any, T numeric.Float](d Distribution[T], rows, cols int, a elementwise.Adapter[C, T], src rand.Source) C {
	out := a.Make(rows, cols)
	for i := 0; i < rows*cols; i++ {
		a.Set(out, i, d.Rand(src))
	}
	return out
}
