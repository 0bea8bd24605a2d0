// Package centrality scores every node of a graph.Graph under one of a fixed
// set of classical centrality measures.
//
// A measure is selected with the closed Variant enumeration; each variant has
// exactly one handler in the dispatch table, so an unknown selector can only
// come from ParseVariant or an out-of-range Variant value and always fails
// with ErrUnknownVariant.
//
// Variants fall into three families:
//
//	Local:     Degree.
//	Path:      Closeness, Harmonic, Betweenness, Load (shortest paths via package shortest).
//	Spectral:  Eigenvector, Information, CurrentFlowBetweenness,
//	           CommunicabilityBetweenness, Subgraph, SecondOrder
//	           (dense matrices via a linalg.Backend).
//
// Weights. By default path variants read an edge weight as a distance and the
// spectral/flow variants read it as adjacency or conductance. WithUnitWeights
// switches every variant to hop counts and a 0/1 adjacency.
// CommunicabilityBetweenness and Subgraph always use the 0/1 adjacency.
// Whenever weights are read, a negative weight fails with ErrNegativeWeight.
//
// Self-loops are stored by the graph but ignored by every variant.
//
// Failures never produce partial results: Compute returns either a ScoreMap
// covering every node with finite values, or a nil map and an error that
// matches one of the package sentinels under errors.Is.
//
// Determinism: identical graphs and options give bit-identical ScoreMaps for
// a given backend. Compute allocates all of its state per call and is safe for
// concurrent use.
package centrality
