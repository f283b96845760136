// SPDX-License-Identifier: MIT

// Package lvstats is a numeric engine for probability distributions:
// densities, distribution functions, quantiles and variates, evaluated
// scalar-by-scalar or elementwise over whole containers.
//
// What is inside?
//
//   - numeric/      Float constraint (float32, float64) and precision-aware math wrappers
//   - special/      incomplete gamma and beta kernels, their logs and inverses,
//     with a fixed number of terms per call
//   - special/precise/  convergence-checked counterparts built on gonum mathext
//   - invert/       damped Newton quantile solver with bisection fallback,
//     and an integer search for discrete distributions
//   - dist/         seventeen distributions sharing one Distribution interface
//   - elementwise/  Map over any container through an Adapter, optionally in parallel
//   - matrix/       generic Dense container and its adapters
//   - catalog/      R-style name registry (dnorm, pt, qgamma, rpois, incbeta, ...)
//   - cmd/lvstats   command line front end (eval, batch, list, sample)
//
// Sentinels, not errors:
//
//	invalid parameters → NaN everywhere
//	x outside support  → density 0 (log -Inf), CDF 0 or 1
//	p = 0, p = 1       → the support bounds
//
// Quick example:
//
//	t := dist.StudentsT[float64]{DOF: 11}
//	q := t.Quantile(0.975)          // ≈ 2.201
//	p := t.CDF(q, false)            // ≈ 0.975
//	ps := dist.CDFSlice[float64](t, []float64{-1, 0, 1}, false)
//
//	go get github.com/katalvlaran/lvstats
package lvstats
