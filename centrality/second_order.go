// SPDX-License-Identifier: MIT
//
// File: second_order.go
// Role: SecondOrder centrality, the spread of return times of a balanced
// random walk.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/linalg"
	"github.com/katalvlaran/ppinet/shortest"
)

// secondOrder scores node j by the standard deviation of the walk's return
// times to j, for a walk made uniform over nodes by Metropolis balancing.
//
// Blueprint:
//
//	Stage 1 (Validate): n >= 2, connected, every strength > 0.
//	Stage 2 (Balance):  add a self-loop of weight d_max − s_i to each node so
//	                    every row sums to d_max; P = (A + loops)/d_max.
//	Stage 3 (Solve):    for each j, m = (I − Q_j)⁻¹·1 where Q_j is P with
//	                    column j zeroed; m_i is the mean first-passage time
//	                    i→j (m_j the mean return time).
//	Stage 4 (Score):    sqrt(2·Σ_i m_i − n(n+1)), clamped at 0.
//
// Complexity: O(V⁴) (one dense solve per node).
func secondOrder(t *shortest.Topology, o *Options) ([]float64, error) {
	// Stage 1: Validate
	n := t.N()
	if n < 2 {
		return nil, fmt.Errorf("secondOrder: %d node(s): %w", n, ErrDegenerateGraph)
	}
	if err := requireConnected(t); err != nil {
		return nil, fmt.Errorf("secondOrder: %w", err)
	}
	str := make([]float64, n)
	var dmax float64
	for i := range str {
		str[i] = strength(t, i)
		if str[i] <= 0 {
			return nil, fmt.Errorf("secondOrder: %q has zero strength: %w", t.IDs[i], ErrDegenerateGraph)
		}
		dmax = math.Max(dmax, str[i])
	}

	// Stage 2: Balance
	p, _ := linalg.NewDense(n, n)
	for i := 0; i < n; i++ {
		row := p.RawRowView(i)
		row[i] = (dmax - str[i]) / dmax
		for _, a := range t.Adj[i] {
			row[a.To] = weightOf(t, a) / dmax
		}
	}

	// Stage 3 + 4: Solve and Score
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		sys, _ := linalg.Identity(n)
		for i := 0; i < n; i++ {
			row, pr := sys.RawRowView(i), p.RawRowView(i)
			for k := 0; k < n; k++ {
				if k != j {
					row[k] -= pr[k]
				}
			}
		}
		m, err := o.Backend.Solve(sys, ones)
		if err != nil {
			return nil, fmt.Errorf("secondOrder: column %d: %w", j, numericErr(err))
		}
		var sum float64
		for _, x := range m {
			sum += x
		}
		out[j] = math.Sqrt(math.Max(0, 2*sum-float64(n*(n+1))))
	}

	return out, nil
}
