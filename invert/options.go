// SPDX-License-Identifier: MIT

package invert

import "fmt"

// Iteration budgets (single source of truth).
const (
	// DefaultMaxIter is the number of Newton/bisection iterations Solve runs.
	DefaultMaxIter = 50

	// DefaultMaxHalvings bounds the step-halving attempts inside one iteration.
	DefaultMaxHalvings = 30

	// DefaultDiscreteSteps bounds both the doubling walk and the integer
	// bisection of SolveDiscrete; 64 covers the whole exact-integer range of float64.
	DefaultDiscreteSteps = 64
)

const (
	panicMaxIter       = "invert: WithMaxIter: n must be > 0, got %d"
	panicMaxHalvings   = "invert: WithMaxHalvings: n must be >= 0, got %d"
	panicDiscreteSteps = "invert: WithDiscreteSteps: n must be > 0, got %d"
)

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the resolved budgets. Fields are unexported; callers pass
// ...Option and the solver resolves them with gatherOptions.
type Options struct {
	maxIter       int
	maxHalvings   int
	discreteSteps int
}

// WithMaxIter sets the fixed iteration budget of Solve.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicMaxIter, n))
	}
	return func(o *Options) { o.maxIter = n }
}

// WithMaxHalvings sets how many times a rejected Newton step is halved
// before the iteration falls back to bisection. Zero disables damping.
func WithMaxHalvings(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf(panicMaxHalvings, n))
	}
	return func(o *Options) { o.maxHalvings = n }
}

// WithDiscreteSteps sets the walk and bisection budgets of SolveDiscrete.
func WithDiscreteSteps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicDiscreteSteps, n))
	}
	return func(o *Options) { o.discreteSteps = n }
}

// MaxIter returns the resolved Solve budget.
func (o Options) MaxIter() int { return o.maxIter }

// MaxHalvings returns the resolved step-halving budget.
func (o Options) MaxHalvings() int { return o.maxHalvings }

// DiscreteSteps returns the resolved SolveDiscrete budget.
func (o Options) DiscreteSteps() int { return o.discreteSteps }

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter:       DefaultMaxIter,
		maxHalvings:   DefaultMaxHalvings,
		discreteSteps: DefaultDiscreteSteps,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
