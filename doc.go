// Package ppinet scores protein–protein interaction networks by centrality.
//
// Interaction records (two protein identifiers and a confidence score) come
// from the STRING database or a TSV export. They become a weighted undirected
// graph, and every protein is scored under one of eleven measures:
//
//	Degree, Eigenvector, Closeness, Information, Betweenness,
//	CurrentFlowBetweenness, CommunicabilityBetweenness, Load,
//	Subgraph, Harmonic, SecondOrder
//
// Layout:
//
//	graph/      — weighted undirected graph keyed by protein ID
//	builder/    — records → graph, plus fixture topologies (complete, path, cycle, star)
//	shortest/   — BFS / Dijkstra with path counts and predecessor lists
//	linalg/     — dense symmetric kernels; native and gonum backends
//	centrality/ — the eleven measures behind Compute
//	stringdb/   — STRING API client and TSV decoder
//	render/     — Graphviz DOT and SVG coloured by score
//	config/     — TOML, .env and PPINET_* environment settings
//	pipeline/   — fetch → build → compute → render runner
//	server/     — HTTP API (gin)
//	cmd/ppinet  — command-line interface (cobra)
//
// Quick example:
//
//	g, _ := builder.Build([]builder.Record{
//		{A: "TPH1", B: "COMT", Score: "0.626"},
//		{A: "COMT", B: "SLC18A2", Score: "0.713"},
//	})
//	scores, _ := centrality.Compute(g, centrality.Betweenness)
//	// scores["COMT"] == 1
//
// The core packages (graph through centrality) perform no I/O and hold no
// global state.
package ppinet
