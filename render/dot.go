package render

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/graph"
)

// Options configures DOT output.
type Options struct {
	// Label names the measure in the title, e.g. "Degree Centrality".
	Label string

	// ShowScores appends the score to each node label.
	ShowScores bool
}

// Title returns the plot title for a measure label.
func Title(label string) string {
	return "Protein Interaction Graph with " + label
}

// DOT converts g and its scores to Graphviz DOT source.
//
// Nodes without a score are drawn in the ramp's midpoint colour. Node and
// edge order follow g.Nodes() and g.Edges(), so output is deterministic.
// Self-loops are omitted.
func DOT(g *graph.Graph, scores centrality.ScoreMap, opts Options) string {
	norm := normalise(scores)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", Title(opts.Label))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontname=\"sans-serif\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontname=\"sans-serif\", fontsize=10, width=0.3];\n")
	buf.WriteString("  edge [color=\"#00000033\"];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		t, ok := norm[id]
		if !ok {
			t = 0.5
		}
		label := id
		if opts.ShowScores {
			label = fmt.Sprintf("%s\n%.2f", id, scores[id])
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", id, label, Coolwarm(t))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [penwidth=%.2f];\n", e.From, e.To, penwidth(e.Weight))
	}

	buf.WriteString("}\n")

	return buf.String()
}

// penwidth maps a confidence in [0,1] to a stroke width in [0.5, 2.5].
func penwidth(w float64) float64 {
	return 0.5 + 2*math.Max(0, math.Min(1, w))
}

// SVG renders DOT source with the neato engine.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
