// SPDX-License-Identifier: MIT
// Package: ppinet/builder
//
// api.go - public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Build is BuildGraph over a single FromRecords constructor.
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ppinet/graph"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
type Constructor func(g *graph.Graph, cfg config) error

// BuildGraph creates a new graph, resolves the configuration from opts and
// applies all constructors in order. The first constructor error is wrapped
// with "BuildGraph: %w" and returned together with a nil graph.
//
// Complexity: Σ cost of constructors + O(len(opts)).
func BuildGraph(opts []Option, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build populates a fresh graph from records processed in input order.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the record index) for an unparsable
//     score or an empty endpoint.
//   - graph.ErrInvalidWeight for a score that parses to NaN or ±Inf.
//
// On error the returned graph is nil.
func Build(records []Record, opts ...Option) (*graph.Graph, error) {
	return BuildGraph(opts, FromRecords(records))
}

// Into applies records to an existing graph, overwriting duplicate pairs.
//
// Every record is validated before the first insertion, so a malformed batch
// leaves g untouched.
func Into(g *graph.Graph, records []Record, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := FromRecords(records)(g, cfg); err != nil {
		return fmt.Errorf("Into: %w", err)
	}

	return nil
}
