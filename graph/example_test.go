package graph_test

import (
	"fmt"

	"github.com/katalvlaran/ppinet/graph"
)

// ExampleGraph builds the three-protein triangle and shows that a repeated
// pair overwrites the stored confidence instead of adding a parallel edge.
func ExampleGraph() {
	g := graph.New()
	_ = g.AddEdge("TPH1", "COMT", 0.8)
	_ = g.AddEdge("COMT", "HTR1B", 0.7)
	_ = g.AddEdge("HTR1B", "TPH1", 0.9)
	_ = g.AddEdge("COMT", "TPH1", 0.95)

	w, _ := g.EdgeWeight("TPH1", "COMT")
	fmt.Println(g.Nodes())
	fmt.Println(g.EdgeCount(), w)
	// Output:
	// [COMT HTR1B TPH1]
	// 3 0.95
}
