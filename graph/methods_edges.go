// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge, HasEdge, EdgeWeight, Edges, EdgeCount.
// Determinism:
//   - Edges() is sorted by (From, To) with From <= To.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package graph

import (
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {a,b} with weight w.
//
// Steps:
//  1. Validate IDs (ErrEmptyNodeID) and weight finiteness (ErrInvalidWeight).
//  2. Ensure both endpoints exist.
//  3. Store w in both adjacency directions; if the pair already had an edge,
//     its weight is overwritten and the edge count is unchanged.
//
// Weights outside [0,1] are accepted. A self-loop (a == b) is stored once.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, w float64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(a)
	g.ensureNode(b)
	if _, exists := g.adjacency[a][b]; !exists {
		g.edgeCount++
	}
	g.adjacency[a][b] = w
	g.adjacency[b][a] = w

	return nil
}

// HasEdge reports whether the pair {a,b} is joined by an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeWeight returns the weight stored for {a,b}.
// A missing endpoint is reported as ErrNoSuchEdge as well: the question asked
// is about the pair, not about the nodes.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[a][b]
	if !ok {
		return 0, ErrNoSuchEdge
	}

	return w, nil
}

// Edges returns every edge once, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var (
		a, b string
		w    float64
		nbrs map[string]float64
	)
	for a, nbrs = range g.adjacency {
		for b, w = range nbrs {
			if a <= b { // each unordered pair once; loops have a == b
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of stored edges (self-loops included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
