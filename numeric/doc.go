// SPDX-License-Identifier: MIT

// Package numeric defines the precision-generic scalar contract shared by every
// kernel in lvstats.
//
// The Float constraint admits float32 and float64 (and named types derived
// from them). Kernels keep their arithmetic in T; calls into the standard
// math package widen to float64 at the call boundary and narrow back through
// an explicit conversion, so no intermediate silently changes precision.
//
// The helpers in this package are thin and allocation-free:
//
//   - float.go  : Float constraint, NaN/Inf constructors and predicates.
//   - mathfn.go : precision-generic wrappers over math (Log, Exp, Lgamma, ...).
//   - limits.go : per-precision constants (Tiny, Epsilon) chosen by type size.
package numeric
