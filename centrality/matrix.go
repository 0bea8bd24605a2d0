// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: dense-matrix views of a Topology and translation of numeric failures.

package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ppinet/linalg"
	"github.com/katalvlaran/ppinet/shortest"
)

// weightOf returns the adjacency contribution of a: 1 in unit mode, the
// stored weight otherwise.
func weightOf(t *shortest.Topology, a shortest.Arc) float64 {
	if t.Unit {
		return 1
	}

	return a.Weight
}

// strength returns Σ weightOf over the arcs of node i.
func strength(t *shortest.Topology, i int) float64 {
	var s float64
	for _, a := range t.Adj[i] {
		s += weightOf(t, a)
	}

	return s
}

// componentLabels assigns each node the index of its component, in order
// of first appearance; it returns the labels and the component count.
func componentLabels(t *shortest.Topology) ([]int, int) {
	n := t.N()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	var (
		count, v, head int
		queue          []int
	)
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for head = 0; head < len(queue); head++ {
			v = queue[head]
			for _, a := range t.Adj[v] {
				if label[a.To] < 0 {
					label[a.To] = count
					queue = append(queue, a.To)
				}
			}
		}
		count++
	}

	return label, count
}

// requireConnected fails with ErrDisconnectedGraph unless t has one component.
func requireConnected(t *shortest.Topology) error {
	if _, c := componentLabels(t); c != 1 {
		return fmt.Errorf("%d components: %w", c, ErrDisconnectedGraph)
	}

	return nil
}

// adjacency builds the symmetric n×n matrix A with A[i][j] = weightOf(arc).
func adjacency(t *shortest.Topology) *linalg.Dense {
	n := t.N()
	m, _ := linalg.NewDense(n, n)
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		for _, a := range t.Adj[i] {
			row[a.To] = weightOf(t, a)
		}
	}

	return m
}

// groundedInverse returns C, the inverse of the Laplacian with node 0's row
// and column removed, embedded back into n×n with zeros at row/column 0.
//
// Potentials p = C·b solve L·p = b for any b with Σb = 0, grounded at p_0 = 0.
func groundedInverse(t *shortest.Topology, b linalg.Backend) (*linalg.Dense, error) {
	n := t.N()
	out, _ := linalg.NewDense(n, n)
	if n == 1 {
		return out, nil
	}
	red, _ := linalg.NewDense(n-1, n-1)
	for i := 1; i < n; i++ {
		row := red.RawRowView(i - 1)
		for _, a := range t.Adj[i] {
			w := weightOf(t, a)
			row[i-1] += w
			if a.To > 0 {
				row[a.To-1] -= w
			}
		}
	}
	inv, err := b.Inverse(red)
	if err != nil {
		return nil, numericErr(err)
	}
	for i := 1; i < n; i++ {
		copy(out.RawRowView(i)[1:], inv.RawRowView(i-1))
	}

	return out, nil
}

// numericErr translates backend failures into engine sentinels, keeping the
// backend error in the chain.
func numericErr(err error) error {
	switch {
	case errors.Is(err, linalg.ErrSingular):
		return fmt.Errorf("%w: %w", ErrDisconnectedGraph, err)
	case errors.Is(err, linalg.ErrEigenFailed):
		return fmt.Errorf("%w: %w", ErrNoConvergence, err)
	default:
		return err
	}
}
