// SPDX-License-Identifier: MIT

package invert

import "github.com/katalvlaran/lvstats/numeric"

// SolveDiscrete returns the smallest integer k in [lo, hi] with cdf(k) >= p,
// the quantile convention for distributions on the integers.
//
// Implementation:
//   - Stage 1: sentinels as in Solve (p = 0 → lo, p = 1 → hi).
//   - Stage 2: walk outward from round(seed) with doubling steps until
//     cdf(left) < p <= cdf(right) (budget DiscreteSteps).
//   - Stage 3: bisect on integers (budget DiscreteSteps) and return right.
//
// lo must be an integer; hi may be +Inf.
func SolveDiscrete[T numeric.Float](cdf func(k T) T, p, lo, hi, seed T, opts ...Option) T {
	switch {
	case numeric.AnyNaN(p, lo, hi) || p < 0 || p > 1 || lo > hi:
		return numeric.NaN[T]()
	case p == 0:
		return lo
	case p == 1:
		return hi
	}
	o := gatherOptions(opts...)

	// The answer lies in (left, right]; left = lo-1 means "below the support".
	k := numeric.Clamp(numeric.Round(seed), lo, hi)
	if numeric.IsNaN(k) {
		k = lo
	}
	var left, right T
	if cdf(k) >= p {
		right, left = k, lo-1
		step := T(1)
		for i := 0; i < o.discreteSteps; i++ {
			cand := right - step
			if cand < lo {
				break
			}
			if cdf(cand) < p {
				left = cand
				break
			}
			right = cand
			step *= 2
		}
	} else {
		left, right = k, hi
		step := T(1)
		for i := 0; i < o.discreteSteps; i++ {
			cand := left + step
			if cand >= hi {
				break
			}
			if cdf(cand) >= p {
				right = cand
				break
			}
			left = cand
			step *= 2
		}
	}

	for i := 0; i < o.discreteSteps && right-left > 1 && numeric.IsFinite(right); i++ {
		mid := numeric.Floor(left + (right-left)/2)
		if cdf(mid) >= p {
			right = mid
		} else {
			left = mid
		}
	}
	return right
}
