// SPDX-License-Identifier: MIT
// Package: ppinet/builder
//
// options.go — functional options for record ingestion and fixtures.
//
// Option constructors validate and panic on meaningless inputs; Build itself
// never panics.

package builder

import (
	"math"
	"strconv"
)

// Option customizes a build by mutating the resolved config.
type Option func(*config)

// config is the immutable-after-resolution build configuration.
type config struct {
	minScore float64            // records scoring below are skipped
	idFn     func(i int) string // node naming for topology constructors
	weight   float64            // edge weight for topology constructors
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		minScore: math.Inf(-1),
		idFn:     DefaultIDFn,
		weight:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn names fixture nodes "1", "2", ... (one-based).
func DefaultIDFn(i int) string { return strconv.Itoa(i + 1) }

// WithMinScore skips records whose parsed score is below t. Skipped records
// are still validated first, so a malformed one aborts the build regardless.
// Panics on NaN.
func WithMinScore(t float64) Option {
	if math.IsNaN(t) {
		panic("builder: WithMinScore(NaN)")
	}
	return func(c *config) { c.minScore = t }
}

// WithIDScheme sets the node naming function for topology constructors.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithWeight sets the uniform edge weight for topology constructors.
// Panics on NaN or ±Inf.
func WithWeight(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithWeight(non-finite)")
	}
	return func(c *config) { c.weight = w }
}
