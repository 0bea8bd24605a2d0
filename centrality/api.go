// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Compute/ComputeNamed entry points and the variant dispatch table.
//
// Design contract:
//   - One handler per Variant; the table is indexed by the enum itself.
//   - Handlers receive an index-based snapshot and return one score per index.
//   - Compute owns validation shared by all variants and the final
//     finiteness check, so handlers never hand back a partial map.

package centrality

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/graph"
	"github.com/katalvlaran/ppinet/shortest"
)

// ScoreMap maps every node ID of the scored graph to its score.
type ScoreMap map[string]float64

// handler describes how one variant is computed.
type handler struct {
	run     func(t *shortest.Topology, o *Options) ([]float64, error)
	weights bool // reads edge weights unless Options.UnitWeights
	dense   bool // builds n×n matrices; subject to MaxDenseNodes
}

// handlers is the dispatch table. Every Variant has exactly one entry.
var handlers = [variantCount]handler{
	Degree:                     {run: degree},
	Eigenvector:                {run: eigenvector, weights: true},
	Closeness:                  {run: closeness, weights: true},
	Information:                {run: information, weights: true, dense: true},
	Betweenness:                {run: betweenness, weights: true},
	CurrentFlowBetweenness:     {run: currentFlowBetweenness, weights: true, dense: true},
	CommunicabilityBetweenness: {run: communicabilityBetweenness, dense: true},
	Load:                       {run: load, weights: true},
	Subgraph:                   {run: subgraph, dense: true},
	Harmonic:                   {run: harmonic, weights: true},
	SecondOrder:                {run: secondOrder, weights: true, dense: true},
}

// Compute scores every node of g under variant v.
//
// Blueprint:
//
//	Stage 1 (Validate): known variant, non-empty graph, dense-size cap.
//	Stage 2 (Prepare):  snapshot g; weights are read only when the variant
//	                    uses them and UnitWeights is off.
//	Stage 3 (Execute):  run the variant's handler.
//	Stage 4 (Finalize): reject non-finite scores, key scores by node ID.
//
// Errors (errors.Is): ErrUnknownVariant, ErrDegenerateGraph,
// ErrDisconnectedGraph, ErrNoConvergence, ErrNegativeWeight.
func Compute(g *graph.Graph, v Variant, opts ...Option) (ScoreMap, error) {
	// Stage 1: Validate
	if !v.Valid() {
		return nil, fmt.Errorf("Compute: %s: %w", v, ErrUnknownVariant)
	}
	if g == nil {
		return nil, fmt.Errorf("Compute(%s): nil graph: %w", v, ErrDegenerateGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := handlers[v]

	// Stage 2: Prepare
	topo, err := shortest.FromGraph(g, o.UnitWeights || !h.weights)
	if err != nil {
		if errors.Is(err, shortest.ErrNegativeWeight) {
			return nil, fmt.Errorf("Compute(%s): %w: %v", v, ErrNegativeWeight, err)
		}
		return nil, fmt.Errorf("Compute(%s): %w", v, err)
	}
	n := topo.N()
	if n == 0 {
		return nil, fmt.Errorf("Compute(%s): empty graph: %w", v, ErrDegenerateGraph)
	}
	if h.dense && n > o.MaxDenseNodes {
		return nil, fmt.Errorf("Compute(%s): %d nodes exceeds dense cap %d: %w", v, n, o.MaxDenseNodes, ErrNoConvergence)
	}

	// Stage 3: Execute
	scores, err := h.run(topo, &o)
	if err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", v, err)
	}

	// Stage 4: Finalize
	out := make(ScoreMap, n)
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("Compute(%s): non-finite score for %q: %w", v, topo.IDs[i], ErrNoConvergence)
		}
		out[topo.IDs[i]] = s
	}

	return out, nil
}

// ComputeNamed is ParseVariant followed by Compute.
func ComputeNamed(g *graph.Graph, name string, opts ...Option) (ScoreMap, error) {
	v, err := ParseVariant(name)
	if err != nil {
		return nil, err
	}

	return Compute(g, v, opts...)
}
