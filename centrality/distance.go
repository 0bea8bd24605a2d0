// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: distance-sum measures, Closeness and Harmonic.

package centrality

import "github.com/katalvlaran/ppinet/shortest"

// closeness is (r−1)/Σd scaled by (r−1)/(n−1), where r counts the nodes
// reachable from u including u itself. The scaling makes scores comparable
// across components, so disconnected graphs are accepted. A node whose
// distances sum to zero scores 0.
// Complexity: one single-source search per node.
func closeness(t *shortest.Topology, _ *Options) ([]float64, error) {
	n := t.N()
	out := make([]float64, n)
	if n == 1 {
		return out, nil
	}
	for u := 0; u < n; u++ {
		r, err := shortest.From(t, u)
		if err != nil {
			return nil, err
		}
		var total float64
		for _, v := range r.Order {
			total += r.Dist[v]
		}
		if total > 0 {
			reach := float64(len(r.Order) - 1)
			out[u] = reach / total * reach / float64(n-1)
		}
	}

	return out, nil
}

// harmonic is Σ 1/d(u,v) over nodes at positive finite distance.
// Unreachable nodes contribute nothing; an isolated node scores 0.
func harmonic(t *shortest.Topology, _ *Options) ([]float64, error) {
	n := t.N()
	out := make([]float64, n)
	for u := 0; u < n; u++ {
		r, err := shortest.From(t, u)
		if err != nil {
			return nil, err
		}
		for _, v := range r.Order {
			if d := r.Dist[v]; d > 0 {
				out[u] += 1 / d
			}
		}
	}

	return out, nil
}
