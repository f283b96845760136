// SPDX-License-Identifier: MIT

package special

import "github.com/katalvlaran/lvstats/numeric"

// IncGammaInv returns x >= 0 such that P(a, x) = p.
//
// Implementation:
//   - Stage 1: sentinels (NaN, a <= 0, p outside [0,1] → NaN; p = 0 → 0; p = 1 → +Inf).
//   - Stage 2: seed (Wilson–Hilferty for a > 1, power-law head for a <= 1).
//   - Stage 3: InverseIterations bracketed Newton steps on the log of the
//     smaller tail, then clamp into [0, +Inf).
//
// Behavior highlights:
//   - The lower tail is solved in ln x, which is exact for the power-law
//     head P ≈ c·xᵃ; the upper tail is solved on ln Q, which is nearly
//     linear in x for the exponential tail.
//   - A step leaving the current bracket is replaced by bisection (or by
//     doubling while the bracket is still unbounded above).
func IncGammaInv[T numeric.Float](a, p T) T {
	if v, ok := gammaInvEdge(a, p); ok {
		return v
	}
	return gammaInv(a, p, 1-p)
}

// IncGammaUpperInv returns x >= 0 such that Q(a, x) = q. For tiny q it is
// more accurate than IncGammaInv(a, 1-q), because 1-q would round to 1.
//
// Sentinels are resolved on q itself: NaN, a <= 0, q outside [0,1] → NaN;
// q = 0 → +Inf; q = 1 → 0.
func IncGammaUpperInv[T numeric.Float](a, q T) T {
	switch {
	case numeric.AnyNaN(a, q) || !validShape(a) || q < 0 || q > 1:
		return numeric.NaN[T]()
	case q == 0:
		return numeric.Inf[T](1)
	case q == 1:
		return 0
	}
	return gammaInv(a, 1-q, q)
}

// IncBetaInv returns x in [0,1] such that I_x(a, b) = p.
//
// Implementation:
//   - Stage 1: sentinels (NaN, a <= 0, b <= 0, p outside [0,1] → NaN; p = 0 → 0; p = 1 → 1).
//   - Stage 2: seed (normal approximation when a, b >= 1; power-law tails otherwise).
//   - Stage 3: InverseIterations bracketed Newton steps on ln I in ln x
//     (p <= 1/2) or on ln(1-I) in ln(1-x) (p > 1/2), then clamp into [0,1].
func IncBetaInv[T numeric.Float](a, b, p T) T {
	switch {
	case numeric.AnyNaN(a, b, p) || !validShape(a) || !validShape(b) || p < 0 || p > 1:
		return numeric.NaN[T]()
	case p == 0:
		return 0
	case p == 1:
		return 1
	}
	return betaInv(a, b, p)
}

func gammaInvEdge[T numeric.Float](a, p T) (T, bool) {
	switch {
	case numeric.AnyNaN(a, p) || !validShape(a) || p < 0 || p > 1:
		return numeric.NaN[T](), true
	case p == 0:
		return 0, true
	case p == 1:
		return numeric.Inf[T](1), true
	}
	return 0, false
}

// gammaInv solves for x given both tail targets: pl = P target, ql = Q target.
// Whichever is smaller drives the iteration, so neither loses precision to
// the 1 - p rounding of the other.
func gammaInv[T numeric.Float](a, pl, ql T) T {
	lnGa := numeric.Lgamma(a)
	x := gammaInvSeed(a, pl, ql)
	if !(x > 0) {
		// The head P ≈ c·xᵃ puts the quantile below the smallest positive T.
		return 0
	}

	lower := pl <= 0.5
	target := numeric.Log(ql)
	if lower {
		target = numeric.Log(pl)
	}

	lo, hi := T(0), numeric.Inf[T](1)
	for it := 0; it < InverseIterations; it++ {
		pv, qv := gammaBoth(a, x)
		var miss T
		if lower {
			miss = pv - pl
		} else {
			miss = ql - qv
		}
		switch {
		case miss < 0:
			lo = x
		case miss > 0:
			hi = x
		default:
			return x
		}

		dens := numeric.Exp((a-1)*numeric.Log(x) - x - lnGa)
		next := numeric.NaN[T]()
		switch {
		case dens <= 0:
		case lower && pv > 0:
			next = x * numeric.Exp(-(numeric.Log(pv)-target)*pv/(x*dens))
		case !lower && qv > 0:
			next = x + (numeric.Log(qv)-target)*qv/dens
		}
		if !(next >= lo && next <= hi && next > 0) {
			if numeric.IsInf(hi, 1) {
				next = 2 * x
			} else {
				next = lo + (hi-lo)/2
			}
		}
		// A fixed point: every remaining step would reproduce x.
		if next == x || numeric.IsInf(next, 1) {
			break
		}
		x = next
	}
	return numeric.Max(x, 0)
}

func gammaInvSeed[T numeric.Float](a, pl, ql T) T {
	if a > 1 {
		pp := ql
		if pl < 0.5 {
			pp = pl
		}
		z := normalTailDeviate(pp)
		if pl >= 0.5 {
			z = -z
		}
		r := 1 - 1/(9*a) - z/(3*numeric.Sqrt(a))
		return numeric.Max(T(1e-3), a*r*r*r)
	}
	t := 1 - a*(T(0.253)+a*T(0.12))
	if pl < t {
		return numeric.Pow(pl/t, 1/a)
	}
	return 1 - numeric.Log(ql/(1-t))
}

// betaInv is IncBetaInv without the sentinel checks.
func betaInv[T numeric.Float](a, b, p T) T {
	x := betaInvSeed(a, b, p)
	if !(x > 0) {
		x = numeric.Nextafter[T](0, 1)
	}
	if !(x < 1) {
		x = numeric.Nextafter[T](1, 0)
	}

	lnB := LogBeta(a, b)
	lower := p <= 0.5
	target := numeric.Log1p(-p)
	if lower {
		target = numeric.Log(p)
	}

	lo, hi := T(0), T(1)
	for it := 0; it < InverseIterations; it++ {
		iv, cv := betaBoth(a, b, x)
		miss := iv - p
		switch {
		case miss < 0:
			lo = x
		case miss > 0:
			hi = x
		default:
			return x
		}

		dens := numeric.Exp((a-1)*numeric.Log(x) + (b-1)*numeric.Log1p(-x) - lnB)
		next := numeric.NaN[T]()
		switch {
		case dens <= 0 || numeric.IsInf(dens, 1):
		case lower && iv > 0:
			next = x * numeric.Exp(-(numeric.Log(iv)-target)*iv/(x*dens))
		case !lower && cv > 0:
			next = 1 - (1-x)*numeric.Exp(-(numeric.Log(cv)-target)*cv/((1-x)*dens))
		}
		if !(next >= lo && next <= hi) {
			next = lo + (hi-lo)/2
		}
		// Beyond float resolution at either end, or a fixed point.
		if !(next > 0 && next < 1) || next == x {
			break
		}
		x = next
	}
	return numeric.Clamp(x, 0, 1)
}

func betaInvSeed[T numeric.Float](a, b, p T) T {
	if a >= 1 && b >= 1 {
		pp := p
		if p >= 0.5 {
			pp = 1 - p
		}
		z := normalTailDeviate(pp)
		if p >= 0.5 {
			z = -z
		}
		al := (z*z - 3) / 6
		h := 2 / (1/(2*a-1) + 1/(2*b-1))
		w := z*numeric.Sqrt(al+h)/h - (1/(2*b-1)-1/(2*a-1))*(al+T(5)/6-2/(3*h))
		return a / (a + b*numeric.Exp(2*w))
	}
	lna := numeric.Log(a / (a + b))
	lnb := numeric.Log(b / (a + b))
	t := numeric.Exp(a*lna) / a
	u := numeric.Exp(b*lnb) / b
	w := t + u
	if p < t/w {
		return numeric.Pow(a*w*p, 1/a)
	}
	return 1 - numeric.Pow(b*w*(1-p), 1/b)
}

// normalTailDeviate returns the rational approximation (Abramowitz & Stegun
// 26.2.22) to the upper normal deviate z with Q(z) = pp, for pp in (0, 1/2].
func normalTailDeviate[T numeric.Float](pp T) T {
	t := numeric.Sqrt(-2 * numeric.Log(pp))
	return t - (T(2.30753)+t*T(0.27061))/(1+t*(T(0.99229)+t*T(0.04481)))
}
