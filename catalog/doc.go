// SPDX-License-Identifier: MIT

// Package catalog is a name-keyed registry over packages dist and special,
// using the R naming scheme: a one-letter prefix (d density, p cdf,
// q quantile, r random) followed by the family (norm, t, gamma, pois, ...),
// plus the special-function kernels (incgamma, incbeta_inv, ...).
//
// Entries are evaluated in float64 with positional parameters:
//
//	e, _ := catalog.Lookup("qt")
//	x, err := e.Eval(0.975, []float64{11}, false) // err is nil, x ≈ 2.201
//
// Only call-shape problems are errors (ErrUnknown, ErrArity). Parameter
// values outside a family's domain produce NaN, as in package dist.
package catalog
