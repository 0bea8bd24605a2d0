// SPDX-License-Identifier: MIT
//
// File: betweenness.go
// Role: shortest-path betweenness (Brandes) and Newman/Goh load.
// Determinism:
//   - Sources run in index order; accumulation walks Order backwards, so
//     floating-point sums are evaluated in a fixed order.

package centrality

import (
	"sort"

	"github.com/katalvlaran/ppinet/shortest"
)

// pairScale returns 1/((n−1)(n−2)), the number of ordered pairs that can
// have an intermediate node, or 0 when n <= 2.
func pairScale(n int) float64 {
	if n <= 2 {
		return 0
	}

	return 1 / (float64(n-1) * float64(n-2))
}

// betweenness is Brandes' accumulation: for each source s the dependency
// δ_s(v) = Σ_{w: v∈P(w)} σ_v/σ_w·(1 + δ_s(w)) is added to every v ≠ s.
// Sums run over ordered pairs and are scaled by 1/((n−1)(n−2)).
// Complexity: O(V·E + V² log V) weighted, O(V·E) unit.
func betweenness(t *shortest.Topology, _ *Options) ([]float64, error) {
	n := t.N()
	out := make([]float64, n)
	delta := make([]float64, n)

	var (
		i, w  int
		coeff float64
	)
	for s := 0; s < n; s++ {
		r, err := shortest.From(t, s)
		if err != nil {
			return nil, err
		}
		for _, w = range r.Order {
			delta[w] = 0
		}
		for i = len(r.Order) - 1; i >= 0; i-- {
			w = r.Order[i]
			coeff = (1 + delta[w]) / r.Sigma[w]
			for _, v := range r.Pred[w] {
				delta[v] += r.Sigma[v] * coeff
			}
			if w != s {
				out[w] += delta[w]
			}
		}
	}

	scale := pairScale(n)
	for i = range out {
		out[i] *= scale
	}

	return out, nil
}

// load sends one unit of flow from every source to every reachable node and
// splits it evenly over predecessors while walking nodes from farthest to
// nearest. A node's load from s is the flow through it minus its own unit.
//
// Walk order is by (distance, index) descending; a predecessor list is cut
// at the source, whose share is discarded.
// Complexity: O(V·E + V² log V).
func load(t *shortest.Topology, _ *Options) ([]float64, error) {
	n := t.N()
	out := make([]float64, n)
	flow := make([]float64, n)
	var onodes []int

	for s := 0; s < n; s++ {
		r, err := shortest.From(t, s)
		if err != nil {
			return nil, err
		}

		onodes = onodes[:0]
		for _, v := range r.Order {
			flow[v] = 1
			if r.Dist[v] > 0 {
				onodes = append(onodes, v)
			}
		}
		sort.Slice(onodes, func(a, b int) bool {
			da, db := r.Dist[onodes[a]], r.Dist[onodes[b]]
			if da != db {
				return da < db
			}
			return onodes[a] < onodes[b]
		})

		for k := len(onodes) - 1; k >= 0; k-- {
			v := onodes[k]
			preds := r.Pred[v]
			share := flow[v] / float64(len(preds))
			for _, x := range preds {
				if x == s {
					break
				}
				flow[x] += share
			}
		}
		for _, v := range r.Order {
			out[v] += flow[v] - 1
		}
	}

	scale := pairScale(n)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}
