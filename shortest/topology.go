package shortest

import (
	"fmt"

	"github.com/katalvlaran/ppinet/graph"
)

// FromGraph snapshots g into a Topology.
//
// In weighted mode (unit == false) every edge must have a non-negative
// weight; the first offending edge in Edges() order is reported with
// ErrNegativeWeight. Self-loops are skipped.
// Edges() is sorted by (From, To) with From < To here, so each adjacency
// list comes out in ascending index order without a further sort.
// Complexity: O(V log V + E log E).
func FromGraph(g *graph.Graph, unit bool) (*Topology, error) {
	ids := g.Nodes()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]Arc, len(ids))
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if !unit && e.Weight < 0 {
			return nil, fmt.Errorf("FromGraph: edge %s-%s weight=%g: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
		}
		a, b := index[e.From], index[e.To]
		adj[a] = append(adj[a], Arc{To: b, Weight: e.Weight})
		adj[b] = append(adj[b], Arc{To: a, Weight: e.Weight})
	}

	return &Topology{IDs: ids, Adj: adj, Unit: unit}, nil
}
