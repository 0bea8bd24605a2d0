// Package builder turns interaction records into a populated graph.Graph.
//
// The main entry point is Build: it takes the ordered (nodeA, nodeB, score)
// triples produced by the STRING-db collaborator, parses every score as a
// float64 and inserts the edges in input order. Later duplicates overwrite
// earlier weights (graph replace-on-duplicate semantics), so the result is
// deterministic for a deterministic input order.
//
// Failure policy:
//
//	A malformed record (unparsable score, empty endpoint) aborts the whole
//	build with ErrMalformedRecord and no graph is returned. A partially built
//	graph from invalid data is never handed to the caller.
//
// Besides records, the package offers deterministic topology constructors
// (Complete, Path, Cycle, Star) that compose through BuildGraph. They are
// used for fixtures, examples and benchmarks of the centrality engine.
//
//	g, err := builder.Build([]builder.Record{
//	    {A: "TPH1", B: "COMT", Score: "0.8"},
//	    {A: "COMT", B: "HTR1B", Score: "0.7"},
//	})
package builder
