// File: components.go
// Role: Connectivity queries used by algorithms that require a connected graph.

package graph

import "sort"

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest ID.
//
// Implementation:
//   - BFS from every unvisited node in sorted order.
//
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]string {
	nodes := g.Nodes()

	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool, len(nodes))
	var out [][]string
	for _, start := range nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []string{start}
		queue := []string{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range g.adjacency[u] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}

// IsConnected reports whether every pair of nodes is joined by a path.
// The empty graph is not connected.
func (g *Graph) IsConnected() bool {
	n := g.NodeCount()
	if n == 0 {
		return false
	}

	return len(g.Components()) == 1
}
