// SPDX-License-Identifier: MIT

package invert

import "github.com/katalvlaran/lvstats/numeric"

// Problem describes a continuous inversion: CDF must be non-decreasing on
// [Lo, Hi] and PDF its derivative. Lo and Hi may be infinite.
type Problem[T numeric.Float] struct {
	CDF  func(x T) T
	PDF  func(x T) T
	Lo   T
	Hi   T
	Seed T // starting point; replaced when outside (Lo, Hi)
}

// Solve returns x in [Lo, Hi] with CDF(x) ≈ p.
//
// Implementation:
//   - Stage 1: sentinels (p NaN or outside [0,1], NaN bounds → NaN; p = 0 → Lo; p = 1 → Hi).
//   - Stage 2: place the seed strictly inside (Lo, Hi).
//   - Stage 3: MaxIter damped Newton iterations with bracket maintenance
//     and a bisection fallback (see package doc).
//
// Complexity: at most MaxIter·(MaxHalvings+1) CDF evaluations and MaxIter
// PDF evaluations.
func Solve[T numeric.Float](pr Problem[T], p T, opts ...Option) T {
	switch {
	case numeric.AnyNaN(p, pr.Lo, pr.Hi) || p < 0 || p > 1 || pr.Lo > pr.Hi:
		return numeric.NaN[T]()
	case p == 0:
		return pr.Lo
	case p == 1:
		return pr.Hi
	}
	o := gatherOptions(opts...)

	a, b := pr.Lo, pr.Hi
	x := startPoint(pr.Seed, a, b)
	fx := pr.CDF(x) - p

	for it := 0; it < o.maxIter; it++ {
		switch {
		case fx < 0:
			a = x
		case fx > 0:
			b = x
		default:
			return x
		}

		moved := false
		if d := pr.PDF(x); d > 0 && numeric.IsFinite(d) {
			dx := fx / d
			if x-dx == x {
				// The step is below the resolution of x.
				return x
			}
			lambda := T(1)
			for h := 0; h <= o.maxHalvings; h++ {
				xn := x - lambda*dx
				if xn >= a && xn <= b && xn != x {
					if fn := pr.CDF(xn) - p; numeric.Abs(fn) <= numeric.Abs(fx) {
						x, fx = xn, fn
						moved = true
						break
					}
				}
				lambda /= 2
			}
		}
		if !moved && numeric.IsFinite(a) && numeric.IsFinite(b) {
			mid := a + (b-a)/2
			if mid == x {
				return x
			}
			x = mid
			fx = pr.CDF(x) - p
		}
	}
	return x
}

// startPoint moves the seed strictly inside (lo, hi).
func startPoint[T numeric.Float](seed, lo, hi T) T {
	if seed > lo && seed < hi {
		return seed
	}
	loInf, hiInf := numeric.IsInf(lo, -1), numeric.IsInf(hi, 1)
	switch {
	case !loInf && !hiInf:
		return lo + (hi-lo)/2
	case loInf && hiInf:
		return 0
	case loInf:
		return hi - 1
	default:
		return lo + 1
	}
}
