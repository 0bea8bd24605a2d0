// SPDX-License-Identifier: MIT
// Package: ppinet/builder
//
// impl_topology.go — deterministic fixture topologies: Complete, Path, Cycle, Star.
//
// Contract:
//   - Node IDs come from cfg.idFn in ascending index order.
//   - Every edge carries cfg.weight.
//   - Parameters below the minimum ⇒ ErrTooFewNodes; never panics.
//
// Complexity:
//   - Complete: O(n²) edges; Path/Cycle/Star: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ppinet/graph"
)

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"

	minCompleteNodes = 1
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
)

// ids materializes n node IDs and inserts them (so n == 1 still yields a node).
func ids(g *graph.Graph, cfg config, n int, method string) ([]string, error) {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = cfg.idFn(i)
		if err := g.AddNode(out[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, out[i], err)
		}
	}

	return out, nil
}

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		v, err := ids(g, cfg, n, methodComplete)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = g.AddEdge(v[i], v[j], cfg.weight); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodComplete, v[i], v[j], err)
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the path 1–2–…–n.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		v, err := ids(g, cfg, n, methodPath)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = g.AddEdge(v[i], v[i+1], cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPath, v[i], v[i+1], err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		v, err := ids(g, cfg, n, methodCycle)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err = g.AddEdge(v[i], v[j], cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, v[i], v[j], err)
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with n nodes: the hub is
// cfg.idFn(0) and the leaves are indices 1..n-1.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		v, err := ids(g, cfg, n, methodStar)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = g.AddEdge(v[0], v[i], cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodStar, v[0], v[i], err)
			}
		}

		return nil
	}
}
