// SPDX-License-Identifier: MIT
//
// File: flow.go
// Role: electrical-network measures, Information (current-flow closeness)
// and CurrentFlowBetweenness. Edges are resistors with conductance equal to
// their adjacency weight.

package centrality

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ppinet/shortest"
)

// information is 1 / Σ_w R(v,w), the inverse of the total effective
// resistance from v to every node.
//
// With C the grounded inverse Laplacian, R(v,w) = C_vv + C_ww − 2·C_vw; the
// value does not depend on which node is grounded.
// Complexity: O(V³) for the inverse plus O(V²).
func information(t *shortest.Topology, o *Options) ([]float64, error) {
	n := t.N()
	if n < 2 {
		return nil, fmt.Errorf("information: %d node(s): %w", n, ErrDegenerateGraph)
	}
	if err := requireConnected(t); err != nil {
		return nil, fmt.Errorf("information: %w", err)
	}
	c, err := groundedInverse(t, o.Backend)
	if err != nil {
		return nil, fmt.Errorf("information: %w", err)
	}

	diag := make([]float64, n)
	var trace float64
	for i := 0; i < n; i++ {
		diag[i] = c.RawRowView(i)[i]
		trace += diag[i]
	}
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		var rowSum float64
		for _, x := range c.RawRowView(v) {
			rowSum += x
		}
		// Σ_w (C_vv + C_ww − 2·C_vw)
		out[v] = 1 / (float64(n)*diag[v] + trace - 2*rowSum)
	}

	return out, nil
}

// currentFlowBetweenness averages, over unordered pairs s<t, the current
// that passes through v when one unit enters at s and leaves at t:
// τ_st(v) = ½·Σ_{e∋v} |I_e| for v ∉ {s,t}. The sum is scaled by
// 2/((n−1)(n−2)); graphs with n <= 2 score 0 everywhere.
//
// Per edge e = {a,b} the current for pair (s,t) is r_s − r_t with
// r_k = w_e·(C_ak − C_bk), so Σ_{s<t}|I_e| is a sum of absolute pairwise
// differences, computed by sorting r. Pairs with an endpoint at v are then
// subtracted for the two endpoints of e.
// Complexity: O(V³ + E·V log V).
func currentFlowBetweenness(t *shortest.Topology, o *Options) ([]float64, error) {
	n := t.N()
	if err := requireConnected(t); err != nil {
		return nil, fmt.Errorf("currentFlowBetweenness: %w", err)
	}
	out := make([]float64, n)
	if n <= 2 {
		return out, nil
	}
	c, err := groundedInverse(t, o.Backend)
	if err != nil {
		return nil, fmt.Errorf("currentFlowBetweenness: %w", err)
	}

	row := make([]float64, n)
	sorted := make([]float64, n)
	var (
		k          int
		w, all, dv float64
		ca, cb     []float64
	)
	for i := 0; i < n; i++ {
		for _, arc := range t.Adj[i] {
			if arc.To < i {
				continue // each edge once
			}
			w = weightOf(t, arc)
			ca, cb = c.RawRowView(i), c.RawRowView(arc.To)
			for k = 0; k < n; k++ {
				row[k] = w * (ca[k] - cb[k])
			}
			copy(sorted, row)
			sort.Float64s(sorted)
			all = 0
			for k = 0; k < n; k++ {
				all += sorted[k] * float64(2*k-n+1)
			}
			for _, v := range [2]int{i, arc.To} {
				dv = 0
				for k = 0; k < n; k++ {
					dv += math.Abs(row[v] - row[k])
				}
				out[v] += (all - dv) / 2
			}
		}
	}

	scale := 2 / (float64(n-1) * float64(n-2))
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}
