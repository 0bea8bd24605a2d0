// SPDX-License-Identifier: MIT
//
// File: eigenvector.go
// Role: Eigenvector centrality by power iteration on A + I.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/shortest"
)

// eigenvector iterates x ← (A+I)·x, normalised to unit Euclidean length,
// from the uniform vector x_i = 1/n.
//
// The identity shift keeps bipartite graphs from oscillating between the
// ±λmax eigenvectors. Converged when Σ|x − x_prev| < n·Tolerance; more than
// MaxIter iterations fail with ErrNoConvergence.
// Complexity: O(MaxIter·(V + E)).
func eigenvector(t *shortest.Topology, o *Options) ([]float64, error) {
	n := t.N()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	limit := float64(n) * o.Tolerance

	var (
		i           int
		norm, delta float64
	)
	for iter := 0; iter < o.MaxIter; iter++ {
		copy(next, x)
		for i = 0; i < n; i++ {
			for _, a := range t.Adj[i] {
				next[a.To] += x[i] * weightOf(t, a)
			}
		}

		norm = 0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}

		delta = 0
		for i = range next {
			next[i] /= norm
			delta += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if delta < limit {
			return x, nil
		}
	}

	return nil, fmt.Errorf("eigenvector: %d iterations: %w", o.MaxIter, ErrNoConvergence)
}
