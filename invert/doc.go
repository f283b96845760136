// SPDX-License-Identifier: MIT

// Package invert turns a monotone CDF into a quantile function.
//
// Solve inverts a continuous CDF by damped Newton–Raphson, using the density
// as the derivative and keeping a bracket that shrinks with every evaluated
// iterate:
//
//   - f(x) = CDF(x) - p; f < 0 raises the lower bracket, f > 0 lowers the upper.
//   - The Newton step x - λ·f/PDF is tried with λ = 1, 1/2, 1/4, ... and the
//     first candidate that stays inside the bracket without increasing |f|
//     is accepted.
//   - When no candidate is accepted and the bracket is finite, the iterate
//     bisects the bracket instead.
//
// SolveDiscrete finds the smallest integer k with CDF(k) >= p by an outward
// doubling walk from the seed followed by integer bisection.
//
// Both run a FIXED iteration budget (see options.go). There is no
// convergence test: the engine never reports failure and simply returns the
// last iterate, so accuracy is established by tests, not checked at runtime.
// Once an iterate stops moving, the remaining iterations are no-ops.
//
// Edge policy: p NaN, p < 0 or p > 1 → NaN; p = 0 → Lo; p = 1 → Hi.
package invert
