// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: solver options with fixed defaults. Constructors panic on values that
// have no meaning; Compute itself never panics.

package centrality

import (
	"math"

	"github.com/katalvlaran/ppinet/linalg"
)

// Default solver parameters.
const (
	// DefaultMaxIter caps Eigenvector power iteration.
	DefaultMaxIter = 100

	// DefaultTolerance is the power-iteration tolerance: converged when
	// Σ|x − x'| < n·tol.
	DefaultTolerance = 1e-6

	// DefaultMaxDenseNodes caps the node count of dense-matrix variants.
	DefaultMaxDenseNodes = 2000
)

// Options configures Compute. Obtain a valid value from DefaultOptions.
type Options struct {
	MaxIter       int            // power-iteration cap
	Tolerance     float64        // power-iteration tolerance
	MaxDenseNodes int            // dense variants fail above this size
	Backend       linalg.Backend // eigen, exp and solve kernels
	UnitWeights   bool           // hop counts and 0/1 adjacency
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults with a native backend.
func DefaultOptions() Options {
	return Options{
		MaxIter:       DefaultMaxIter,
		Tolerance:     DefaultTolerance,
		MaxDenseNodes: DefaultMaxDenseNodes,
		Backend:       linalg.NewNative(),
	}
}

// WithMaxIter sets the power-iteration cap. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("centrality: WithMaxIter(n < 1)")
	}
	return func(o *Options) { o.MaxIter = n }
}

// WithTolerance sets the power-iteration tolerance. Panics unless tol > 0 and finite.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic("centrality: WithTolerance(non-positive or non-finite)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxDenseNodes sets the dense-variant size cap. Panics if n < 1.
func WithMaxDenseNodes(n int) Option {
	if n < 1 {
		panic("centrality: WithMaxDenseNodes(n < 1)")
	}
	return func(o *Options) { o.MaxDenseNodes = n }
}

// WithBackend selects the numeric backend. Panics on nil.
func WithBackend(b linalg.Backend) Option {
	if b == nil {
		panic("centrality: WithBackend(nil)")
	}
	return func(o *Options) { o.Backend = b }
}

// WithUnitWeights ignores edge weights: distances become hop counts and
// adjacency becomes 0/1.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}
