// SPDX-License-Identifier: MIT

// Package dist provides density, CDF, quantile and random-variate evaluators
// for a catalog of probability distributions, generic over numeric.Float.
//
// Every distribution is a small value struct whose exported fields are its
// parameters:
//
//	t := dist.StudentsT[float64]{DOF: 11}
//	t.CDF(-1.01, false)   // 0.1670981...
//	t.Quantile(0.1670981) // -1.01...
//
// Methods:
//
//   - Density(x, logForm)  density or mass at x; logForm returns its natural
//     logarithm assembled from log-space identities, not log(Density(x)).
//   - CDF(x, logForm)      P(X <= x), or its logarithm.
//   - Quantile(p)          smallest x with CDF(x) >= p.
//   - Support()            closure of the support as (lo, hi).
//   - Rand(src)            one variate drawn from src (math/rand/v2; nil uses
//     the global source).
//
// Quantiles come from closed forms where one exists, otherwise from the
// special-function inverses (gamma and beta families) or from package invert
// (Student-t by damped Newton, Binomial and Poisson by integer search).
//
// Sentinels instead of errors:
//
//   - NaN in any argument or parameter → NaN.
//   - Invalid parameters → NaN from every method (Support returns NaN, NaN).
//   - x = ±Inf → density 0, CDF 0 or 1.
//   - Quantile(0) = lo, Quantile(1) = hi, p outside [0,1] → NaN.
//   - Boundary points of the support have per-distribution limiting values,
//     documented on each type.
//
// Container entry points (DensityEach, CDFEach, QuantileEach, Sample and the
// slice shortcuts) live in each.go and run on package elementwise.
package dist
