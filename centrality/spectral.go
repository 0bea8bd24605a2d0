// SPDX-License-Identifier: MIT
//
// File: spectral.go
// Role: walk-counting measures on the 0/1 adjacency, Subgraph and
// CommunicabilityBetweenness.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/shortest"
)

// subgraph is the weighted count of closed walks at each node,
// SC(i) = Σ_j v_ij²·e^{λ_j} = [exp(A)]_ii.
// Overflow surfaces as a non-finite score, which Compute reports as
// ErrNoConvergence.
// Complexity: O(V³).
func subgraph(t *shortest.Topology, o *Options) ([]float64, error) {
	n := t.N()
	vals, vecs, err := o.Backend.EigenSym(adjacency(t))
	if err != nil {
		return nil, fmt.Errorf("subgraph: %w", numericErr(err))
	}
	ex := make([]float64, n)
	for j, l := range vals {
		ex[j] = math.Exp(l)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j, v := range vecs.RawRowView(i) {
			out[i] += v * v * ex[j]
		}
	}

	return out, nil
}

// communicabilityBetweenness measures how much of the walk-based
// communicability between other pairs passes through v:
//
//	ω(v) = Σ_{i≠j, i,j≠v} (G_ij − G(v)_ij) / G_ij
//
// with G = exp(A) and G(v) = exp(A with v's row and column removed). Pairs
// in different components have G_ij = 0 and are skipped. Scores are scaled
// by 1/((n−1)² − (n−1)) when n > 2.
//
// Both exponentials are taken of A − λmax·I. The shift multiplies G and G(v)
// by the same factor e^{−λmax}, leaving every ratio unchanged while keeping
// the entries finite. A pair in the same component whose shifted G_ij
// underflows to 0 fails with ErrNoConvergence.
// Complexity: O(V⁴).
func communicabilityBetweenness(t *shortest.Topology, o *Options) ([]float64, error) {
	n := t.N()
	a := adjacency(t)
	vals, _, err := o.Backend.EigenSym(a)
	if err != nil {
		return nil, fmt.Errorf("communicabilityBetweenness: %w", numericErr(err))
	}
	lmax := vals[n-1]
	for i := 0; i < n; i++ {
		a.RawRowView(i)[i] -= lmax
	}
	g, err := o.Backend.ExpSym(a)
	if err != nil {
		return nil, fmt.Errorf("communicabilityBetweenness: %w", numericErr(err))
	}
	label, _ := componentLabels(t)

	out := make([]float64, n)
	var i, j int
	for v := 0; v < n; v++ {
		av := a.Clone()
		for i = 0; i < n; i++ {
			if i != v {
				av.RawRowView(v)[i] = 0
				av.RawRowView(i)[v] = 0
			}
		}
		gv, err := o.Backend.ExpSym(av)
		if err != nil {
			return nil, fmt.Errorf("communicabilityBetweenness: node %d: %w", v, numericErr(err))
		}

		var sum float64
		for i = 0; i < n; i++ {
			if i == v {
				continue
			}
			gi, gvi := g.RawRowView(i), gv.RawRowView(i)
			for j = 0; j < n; j++ {
				if j == i || j == v || label[i] != label[j] {
					continue
				}
				if gi[j] == 0 {
					return nil, fmt.Errorf("communicabilityBetweenness: G[%d][%d] underflow: %w", i, j, ErrNoConvergence)
				}
				sum += (gi[j] - gvi[j]) / gi[j]
			}
		}
		out[v] = sum
	}

	if n > 2 {
		m := float64(n - 1)
		scale := 1 / (m*m - m)
		for v := range out {
			out[v] *= scale
		}
	}

	return out, nil
}
