package centrality

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrUnknownVariant indicates a selector outside the fixed variant set.
	ErrUnknownVariant = errors.New("centrality: unknown variant")

	// ErrDegenerateGraph indicates a graph too small (or too empty) for the measure.
	ErrDegenerateGraph = errors.New("centrality: degenerate graph")

	// ErrDisconnectedGraph indicates a measure that requires a connected graph.
	ErrDisconnectedGraph = errors.New("centrality: graph is not connected")

	// ErrNoConvergence indicates an iterative or numeric procedure that did not
	// settle, overflowed, or a graph above the dense-size cap.
	ErrNoConvergence = errors.New("centrality: no convergence")

	// ErrNegativeWeight indicates a negative edge weight where weights are read.
	ErrNegativeWeight = errors.New("centrality: negative edge weight")
)
