package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/centrality"
)

// ExampleCompute scores the proteins of a small STRING-style result.
func ExampleCompute() {
	g, err := builder.Build([]builder.Record{
		{A: "TPH1", B: "COMT", Score: "0.62"},
		{A: "COMT", B: "SLC18A2", Score: "0.71"},
		{A: "COMT", B: "HTR2C", Score: "0.81"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	scores, err := centrality.Compute(g, centrality.Degree)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, id := range g.Nodes() {
		fmt.Printf("%s %.3f\n", id, scores[id])
	}
	// Output:
	// COMT 1.000
	// HTR2C 0.333
	// SLC18A2 0.333
	// TPH1 0.333
}

// ExampleComputeNamed shows that selectors must match canonical names exactly.
func ExampleComputeNamed() {
	g, _ := builder.BuildGraph(nil, builder.Path(3))

	scores, err := centrality.ComputeNamed(g, "Betweenness")
	fmt.Println(scores["2"], err)

	_, err = centrality.ComputeNamed(g, "betweenness")
	fmt.Println(err)
	// Output:
	// 1 <nil>
	// ParseVariant("betweenness"): centrality: unknown variant
}

// ExampleVariants lists the selectors with their display labels.
func ExampleVariants() {
	for _, v := range centrality.Variants()[:3] {
		fmt.Printf("%-12s %s\n", v, v.Label())
	}
	// Output:
	// Degree       Degree Centrality
	// Eigenvector  Eigenvector Centrality
	// Closeness    Closeness Centrality
}
