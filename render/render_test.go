package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/graph"
	"github.com/katalvlaran/ppinet/render"
)

func TestCoolwarm(t *testing.T) {
	assert.Equal(t, "#3b4cc0", render.Coolwarm(0))
	assert.Equal(t, "#dddddd", render.Coolwarm(0.5))
	assert.Equal(t, "#b40426", render.Coolwarm(1))
	assert.Equal(t, render.Coolwarm(0), render.Coolwarm(-3))
	assert.Equal(t, render.Coolwarm(1), render.Coolwarm(7))
	assert.Len(t, render.Coolwarm(0.33), 7)
}

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("TPH1", "COMT", 0.9))
	require.NoError(t, g.AddEdge("COMT", "HTR2C", 0.4))
	require.NoError(t, g.AddEdge("HTR2C", "HTR2C", 1))
	require.NoError(t, g.AddNode("SLC18A2"))

	return g
}

func TestDOT(t *testing.T) {
	g := sample(t)
	scores := centrality.ScoreMap{"COMT": 1, "HTR2C": 0.5, "TPH1": 0.5, "SLC18A2": 0}
	dot := render.DOT(g, scores, render.Options{Label: centrality.Degree.Label()})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.Contains(t, dot, "layout=neato;")
	assert.Contains(t, dot, `label="Protein Interaction Graph with Degree Centrality";`)
	assert.Contains(t, dot, `"COMT" [label="COMT", fillcolor="#b40426"];`)
	assert.Contains(t, dot, `"SLC18A2" [label="SLC18A2", fillcolor="#3b4cc0"];`)
	assert.Contains(t, dot, `"TPH1" [label="TPH1", fillcolor="#dddddd"];`)
	assert.Contains(t, dot, `"COMT" -- "TPH1" [penwidth=2.30];`)
	assert.Contains(t, dot, `"COMT" -- "HTR2C" [penwidth=1.30];`)
	assert.NotContains(t, dot, `"HTR2C" -- "HTR2C"`)

	// Node order follows the sorted node set.
	assert.Less(t, strings.Index(dot, `"COMT" [`), strings.Index(dot, `"TPH1" [`))
	assert.Equal(t, dot, render.DOT(g, scores, render.Options{Label: centrality.Degree.Label()}))
}

func TestDOT_ConstantAndMissingScores(t *testing.T) {
	g := sample(t)
	dot := render.DOT(g, centrality.ScoreMap{"COMT": 3, "TPH1": 3}, render.Options{Label: "X", ShowScores: true})
	assert.Contains(t, dot, `"COMT" [label="COMT\n3.00", fillcolor="#dddddd"];`)
	assert.Contains(t, dot, `"SLC18A2" [label="SLC18A2\n0.00", fillcolor="#dddddd"];`)
}

func TestSVG(t *testing.T) {
	g := sample(t)
	dot := render.DOT(g, centrality.ScoreMap{"COMT": 1}, render.Options{Label: "Load Centrality"})
	svg, err := render.SVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "COMT")
}
