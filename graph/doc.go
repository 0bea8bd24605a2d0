// Package graph provides the weighted, undirected interaction graph that the
// centrality engine operates on.
//
// A Graph G = (V,E) holds protein identifiers as nodes and at most one
// weighted edge per unordered pair {a,b}:
//
//   - Undirected: AddEdge(a,b,w) and AddEdge(b,a,w) address the same edge.
//   - Replace-on-duplicate: a second AddEdge for the same pair overwrites the
//     stored weight; no parallel edges and no extra nodes are created.
//   - Weights are float64 and must be finite; the usual range is [0,1]
//     (interaction confidence) but values outside it are accepted.
//   - Self-loops are stored so that odd input never crashes the model, but
//     they do not count as neighbours of anything but themselves and every
//     centrality variant ignores them.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return sorted results, so algorithms
//	built on top iterate in a stable order and produce reproducible scores.
//
// Concurrency:
//
//	All methods are safe for concurrent use (single sync.RWMutex). The
//	pipeline still builds one Graph per request; no graph is shared
//	between callers.
//
// Errors:
//
//	ErrEmptyNodeID   - zero-length node identifier.
//	ErrInvalidWeight - NaN or ±Inf weight.
//	ErrUnknownNode   - node is not in the graph.
//	ErrNoSuchEdge    - no edge between the requested pair.
//
// Core methods:
//
//	AddEdge(a, b string, w float64) error  // O(1)
//	AddNode(id string) error               // O(1)
//	Nodes() []string                       // O(V log V)
//	Edges() []Edge                         // O(E log E)
//	Neighbors(id string) ([]string, error) // O(d log d)
//	EdgeWeight(a, b string) (float64, error)
//	Components() [][]string                // O(V+E)
package graph
