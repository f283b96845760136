// SPDX-License-Identifier: MIT

// Package elementwise applies a scalar kernel to every element of a container
// and returns a new container of the same shape.
//
// What:
//
//   - Adapter[C, T] is the whole capability set the layer needs from a
//     container type C: Size, Get, Set (row-major flat index) and Make.
//   - Contiguous[C, T] is an optional fast path exposing the flat backing slice.
//   - Map converts each input element to the output precision, applies the
//     kernel and stores the result in a freshly made output container.
//   - Apply is Map with the same adapter on both sides.
//
// Adapters shipped here: SliceAdapter (a []T viewed as n×1), GonumDense
// (*mat.Dense) and GonumVec (*mat.VecDense). Package matrix ships adapters for
// its own Dense type.
//
// Guarantees:
//
//   - The input container is never written; exactly one output is allocated.
//   - Element i of the output depends only on element i of the input, so the
//     index range can be split across goroutines (WithWorkers) without
//     changing a single bit of the result.
//   - Empty and 1-element containers are supported.
//
// Set must be safe for concurrent calls on distinct indices when more than
// one worker is configured; every adapter in this repository satisfies that.
package elementwise
