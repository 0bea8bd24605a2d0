// Package shortest computes single-source shortest paths over an indexed
// snapshot of a graph.Graph, recording everything the path-based centrality
// measures need: settlement order, distances, shortest-path counts (σ) and
// predecessor lists.
//
// Two modes share one Result shape:
//
//   - Weighted: Dijkstra with a binary heap and lazy decrease-key. Edge
//     weights are distances and must be non-negative (ErrNegativeWeight).
//   - Unit: breadth-first search, every edge has length 1.
//
// Ties are exact: a second path is counted only when its float64 length is
// bit-equal to the best known one.
//
// Determinism:
//
//	Node indices follow graph.Nodes() (sorted IDs), neighbours are scanned in
//	ascending index order and heap ties are broken by insertion order, so the
//	same graph always yields the same Order and Pred lists.
//
// Complexity:
//
//	Weighted: O((V + E) log V) time, O(V + E) space (lazy heap).
//	Unit:     O(V + E) time, O(V) space.
//
// Self-loops are dropped when the snapshot is taken; they never shorten a path.
package shortest
