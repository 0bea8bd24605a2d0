// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Topology snapshot, Result and sentinel errors.

package shortest

import (
	"errors"
	"math"
)

// Sentinel errors for shortest-path searches.
var (
	// ErrNegativeWeight indicates an edge with weight < 0 in weighted mode.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("shortest: source index out of range")
)

// Arc is one directed half of an undirected edge.
type Arc struct {
	To     int     // neighbour index
	Weight float64 // length in weighted mode, ignored in unit mode
}

// Topology is an immutable, index-based copy of a graph.
//
// IDs[i] is the node with index i; IDs is sorted. Adj[i] lists the arcs of
// node i in ascending To order, without self-loops.
type Topology struct {
	IDs  []string
	Adj  [][]Arc
	Unit bool // hop counts instead of weights
}

// N returns the number of nodes.
func (t *Topology) N() int { return len(t.IDs) }

// Result holds one single-source search.
//
//	Order: reachable nodes in non-decreasing distance, source first.
//	Dist:  distance per node, +Inf when unreachable.
//	Sigma: number of shortest paths from the source per node (σ_s = 1).
//	Pred:  predecessors on shortest paths, in discovery order.
type Result struct {
	Source int
	Order  []int
	Dist   []float64
	Sigma  []float64
	Pred   [][]int
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v int) bool { return !math.IsInf(r.Dist[v], 1) }
