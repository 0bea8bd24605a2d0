// File: methods_nodes.go
// Role: Node lifecycle and neighbourhood queries.
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted ascending.

package graph

import "sort"

// AddNode inserts an isolated node; existing nodes are left untouched.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is in the graph.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Neighbors returns the sorted IDs adjacent to id. A node with a self-loop
// lists itself. Isolated nodes yield an empty, non-nil slice.
//
// Errors:
//   - ErrUnknownNode if id is not in the graph.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrUnknownNode
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of distinct neighbours of id, not counting a
// self-loop.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrUnknownNode
	}
	d := len(nbrs)
	if _, loop := nbrs[id]; loop {
		d--
	}

	return d, nil
}

// Clone returns an independent deep copy.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, nbrs := range g.adjacency {
		inner := make(map[string]float64, len(nbrs))
		for n, w := range nbrs {
			inner[n] = w
		}
		c.adjacency[id] = inner
	}

	return c
}

// ensureNode creates the adjacency bucket for id. Caller holds the write lock.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}
