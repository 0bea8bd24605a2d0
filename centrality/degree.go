package centrality

import (
	"fmt"

	"github.com/katalvlaran/ppinet/shortest"
)

// degree is the fraction of other nodes each node is adjacent to.
// Complexity: O(V).
func degree(t *shortest.Topology, _ *Options) ([]float64, error) {
	n := t.N()
	if n < 2 {
		return nil, fmt.Errorf("degree: %d node(s): %w", n, ErrDegenerateGraph)
	}
	out := make([]float64, n)
	norm := 1 / float64(n-1)
	for i := range out {
		out[i] = float64(len(t.Adj[i])) * norm
	}

	return out, nil
}
