// SPDX-License-Identifier: MIT

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/invert"
	"github.com/katalvlaran/lvstats/numeric"
	"github.com/katalvlaran/lvstats/special"
)

// StudentsT is the standard Student-t distribution with DOF degrees of freedom.
//
// Valid parameters: DOF > 0. DOF = +Inf is the standard normal limit and is
// evaluated as such.
type StudentsT[T numeric.Float] struct {
	DOF T
}

func (s StudentsT[T]) valid() bool { return s.DOF > 0 }

// normal reports whether DOF is the +Inf limit.
func (s StudentsT[T]) normal() bool { return numeric.IsInf(s.DOF, 1) }

// Density returns (1 + x²/ν)^(-(ν+1)/2) / (√ν·B(1/2, ν/2)).
func (s StudentsT[T]) Density(x T, logForm bool) T {
	if numeric.AnyNaN(x, s.DOF) || !s.valid() {
		return numeric.NaN[T]()
	}
	if s.normal() {
		return Normal[T]{Sigma: 1}.Density(x, logForm)
	}
	if numeric.IsInf(x, 0) {
		return maybeLog(T(0), logForm)
	}
	nu := s.DOF
	ld := -numeric.Log(nu)/2 - special.LogBeta(T(0.5), nu/2) - (nu+1)/2*numeric.Log1p(x*x/nu)
	if logForm {
		return ld
	}
	return numeric.Exp(ld)
}

// CDF returns P(X <= x).
//
// Implementation:
//   - Stage 1: x² < ν → 0.5 ± 0.5·I_{x²/(ν+x²)}(1/2, ν/2), the centre regime.
//   - Stage 2: otherwise the tail 0.5·I_{ν/(ν+x²)}(ν/2, 1/2), taken directly
//     for x < 0 and complemented for x > 0.
//
// The log form of the lower tail is ln 0.5 + ln I, so it does not underflow.
func (s StudentsT[T]) CDF(x T, logForm bool) T {
	if numeric.AnyNaN(x, s.DOF) || !s.valid() {
		return numeric.NaN[T]()
	}
	if s.normal() {
		return Normal[T]{Sigma: 1}.CDF(x, logForm)
	}
	switch {
	case numeric.IsInf(x, -1):
		return maybeLog(T(0), logForm)
	case numeric.IsInf(x, 1):
		return maybeLog(T(1), logForm)
	}

	nu, x2 := s.DOF, x*x
	if x2 < nu {
		half := special.IncBeta(T(0.5), nu/2, x2/(nu+x2)) / 2
		v := T(0.5) + half
		if x < 0 {
			v = T(0.5) - half
		}
		return maybeLog(v, logForm)
	}

	w := nu / (nu + x2)
	if x < 0 {
		if logForm {
			return special.LogIncBeta(nu/2, T(0.5), w) - ln2
		}
		return special.IncBeta(nu/2, T(0.5), w) / 2
	}
	tail := special.IncBeta(nu/2, T(0.5), w) / 2
	if logForm {
		return numeric.Log1p(-tail)
	}
	return 1 - tail
}

// Quantile inverts CDF with invert.Solve on the half line holding the
// answer. Two seeds compete and the one whose tail probability is closer to
// p in log terms wins:
//
//   - the Cornish-Fisher expansion around the normal quantile z,
//     z + (z³+z)/(4ν) + (5z⁵+16z³+3z)/(96ν²);
//   - the power-law tail ±√ν·(p·ν·B(ν/2, 1/2))^(-1/ν), which is exact in the
//     limit and keeps small ν from stalling far out in the tail.
func (s StudentsT[T]) Quantile(p T) T {
	if numeric.IsNaN(s.DOF) || !s.valid() {
		return numeric.NaN[T]()
	}
	if v, ok := quantileEdge(p, numeric.Inf[T](-1), numeric.Inf[T](1)); ok {
		return v
	}
	z := stdNormalQuantile(p)
	if s.normal() {
		return z
	}
	if p == 0.5 {
		return 0
	}

	pp, sign := p, T(-1)
	lo, hi := numeric.Inf[T](-1), T(0)
	if p > 0.5 {
		pp, sign = 1-p, 1
		lo, hi = 0, numeric.Inf[T](1)
	}
	seed := studentSeed(z, s.DOF)
	if tail := sign * studentTailSeed(pp, s.DOF); numeric.IsFinite(tail) && s.tailMiss(tail, pp) < s.tailMiss(seed, pp) {
		seed = tail
	}
	return invert.Solve(invert.Problem[T]{
		CDF:  func(x T) T { return s.CDF(x, false) },
		PDF:  func(x T) T { return s.Density(x, false) },
		Lo:   lo,
		Hi:   hi,
		Seed: seed,
	}, p)
}

// tailMiss is |ln P(T <= -|x|) - ln pp|, the log distance between the
// smaller tail at x and the target.
func (s StudentsT[T]) tailMiss(x, pp T) T {
	m := numeric.Abs(s.CDF(-numeric.Abs(x), true) - numeric.Log(pp))
	if numeric.IsNaN(m) {
		return numeric.Inf[T](1)
	}
	return m
}

// Support returns (-Inf, +Inf).
func (s StudentsT[T]) Support() (lo, hi T) {
	if numeric.IsNaN(s.DOF) || !s.valid() {
		return nanSupport[T]()
	}
	return numeric.Inf[T](-1), numeric.Inf[T](1)
}

// Rand draws one Student-t variate.
func (s StudentsT[T]) Rand(src rand.Source) T {
	if numeric.IsNaN(s.DOF) || !s.valid() {
		return numeric.NaN[T]()
	}
	if s.normal() {
		return Normal[T]{Sigma: 1}.Rand(src)
	}
	return T(distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(s.DOF), Src: src}.Rand())
}

func studentSeed[T numeric.Float](z, nu T) T {
	z2 := z * z
	z3 := z2 * z
	z5 := z3 * z2
	return z + (z3+z)/(4*nu) + (5*z5+16*z3+3*z)/(96*nu*nu)
}

// studentTailSeed returns |x| from P(T <= -|x|) ≈ (ν/x²)^(ν/2) / (ν·B(ν/2, 1/2)).
func studentTailSeed[T numeric.Float](pp, nu T) T {
	return numeric.Exp(numeric.Log(nu)/2 - (numeric.Log(pp)+numeric.Log(nu)+special.LogBeta(nu/2, T(0.5)))/nu)
}
