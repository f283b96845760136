// SPDX-License-Identifier: MIT

package elementwise

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvstats/numeric"
)

// Map returns a new container of in's shape whose element i is
// kernel(TO(in[i])).
//
// Implementation:
//   - Stage 1: read the shape through ai and make the output through ao.
//   - Stage 2: pick the loop body. When both adapters are Contiguous and their
//     slices cover the shape, the body walks the flat slices; otherwise it
//     goes through Get/Set.
//   - Stage 3: run the body over [0, rows*cols), split into contiguous chunks
//     on an errgroup limited to WithWorkers goroutines.
//
// Behavior highlights:
//   - Input elements are converted to the output precision TO before the
//     kernel sees them (float32 in, float64 out promotes).
//   - The result does not depend on the worker count.
//
// Complexity: O(rows*cols) kernel calls, one output allocation.
func Map[CI, CO any, TI, TO numeric.Float](in CI, ai Adapter[CI, TI], ao Adapter[CO, TO], kernel func(TO) TO, opts ...Option) CO {
	o := gatherOptions(opts...)

	rows, cols := ai.Size(in)
	out := ao.Make(rows, cols)
	n := rows * cols
	if n == 0 {
		return out
	}

	body := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ao.Set(out, i, kernel(TO(ai.Get(in, i))))
		}
	}
	if src, dst, ok := flatViews(in, ai, out, ao, n); ok {
		body = func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = kernel(TO(src[i]))
			}
		}
	}

	run(n, o, body)
	return out
}

// Apply is Map with the same adapter for input and output.
func Apply[C any, T numeric.Float](in C, a Adapter[C, T], kernel func(T) T, opts ...Option) C {
	return Map(in, a, a, kernel, opts...)
}

// flatViews returns the backing slices of in and out when both adapters
// expose them and they hold at least n elements.
func flatViews[CI, CO any, TI, TO numeric.Float](in CI, ai Adapter[CI, TI], out CO, ao Adapter[CO, TO], n int) ([]TI, []TO, bool) {
	ci, ok := ai.(Contiguous[CI, TI])
	if !ok {
		return nil, nil, false
	}
	co, ok := ao.(Contiguous[CO, TO])
	if !ok {
		return nil, nil, false
	}
	src, dst := ci.Values(in), co.Values(out)
	if len(src) < n || len(dst) < n {
		return nil, nil, false
	}
	return src[:n], dst[:n], true
}

// run evaluates body over [0, n) in o.chunks(n) contiguous pieces.
func run(n int, o Options, body func(lo, hi int)) {
	k := o.chunks(n)
	if k <= 1 {
		body(0, n)
		return
	}
	size := (n + k - 1) / k

	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // bodies never fail
}
