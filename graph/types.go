// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the New constructor.

package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")

	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrNoSuchEdge indicates that no edge joins the requested pair.
	ErrNoSuchEdge = errors.New("graph: no such edge")
)

// Edge is a read-only snapshot of one undirected edge.
//
// From and To are ordered lexicographically (From <= To) so that each
// unordered pair has exactly one representation.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a weighted, undirected, simple graph keyed by string IDs.
//
// adjacency[a][b] == adjacency[b][a] holds the weight of edge {a,b}. A node
// with no edges still owns an empty inner map, which is how isolated nodes
// are represented.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[string]map[string]float64
	edgeCount int // unordered pairs, self-loops included
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{adjacency: make(map[string]map[string]float64)}
}
