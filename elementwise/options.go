// SPDX-License-Identifier: MIT

package elementwise

import "fmt"

// Defaults (single source of truth).
const (
	// DefaultWorkers runs the index loop on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMinChunk is the smallest number of elements handed to one
	// goroutine; containers below it are never split.
	DefaultMinChunk = 4096
)

const (
	panicWorkers  = "elementwise: WithWorkers: n must be > 0, got %d"
	panicMinChunk = "elementwise: WithMinChunk: n must be > 0, got %d"
)

// Option mutates dispatch options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the resolved dispatch configuration.
type Options struct {
	workers  int
	minChunk int
}

// WithWorkers bounds the number of goroutines evaluating chunks concurrently.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicWorkers, n))
	}
	return func(o *Options) { o.workers = n }
}

// WithMinChunk sets the smallest chunk a worker receives.
func WithMinChunk(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicMinChunk, n))
	}
	return func(o *Options) { o.minChunk = n }
}

// Workers returns the configured worker bound.
func (o Options) Workers() int { return o.workers }

// MinChunk returns the configured minimum chunk size.
func (o Options) MinChunk() int { return o.minChunk }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, minChunk: DefaultMinChunk}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// chunks returns how many contiguous pieces n elements are split into.
func (o Options) chunks(n int) int {
	if o.workers <= 1 || n <= o.minChunk {
		return 1
	}
	return min(o.workers, (n+o.minChunk-1)/o.minChunk)
}
