// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"unsafe"
)

// Per-precision guards. The float64 guard follows the classic 1e-300
// "raise zero" floor used by continued-fraction evaluators; float32 needs a
// floor that is still a normal number (its smallest normal is ~1.2e-38).
//
// They are variables, not constants: a constant converted to a type parameter
// must fit every type in its set, and 1e-300 does not fit float32.
var (
	tiny64 float64 = 1e-300
	tiny32 float32 = 1e-30

	eps64 float64 = 0x1p-52
	eps32 float32 = 0x1p-23

	max64 float64 = math.MaxFloat64
	max32 float32 = math.MaxFloat32
)

// Is32 reports whether T is a single-precision type.
// Named types (~float32) are recognized through their size.
func Is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Tiny returns the smallest magnitude continued-fraction denominators are
// raised to, so backward recurrences never divide by zero.
func Tiny[T Float]() T {
	if Is32[T]() {
		return T(tiny32)
	}
	return T(tiny64)
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if Is32[T]() {
		return T(eps32)
	}
	return T(eps64)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	if Is32[T]() {
		return T(max32)
	}
	return T(max64)
}
