package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/graph"
)

var triangleRecords = []builder.Record{
	{A: "A", B: "B", Score: "0.8"},
	{A: "B", B: "C", Score: "0.7"},
	{A: "C", B: "A", Score: "0.9"},
}

func TestBuild_RoundTrip(t *testing.T) {
	g, err := builder.Build(triangleRecords)
	require.NoError(t, err)

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 0.8, w)

	require.NoError(t, builder.Into(g, []builder.Record{{A: "A", B: "B", Score: "0.95"}}))
	w, err = g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 0.95, w)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
}

func TestBuild_LaterDuplicateWins(t *testing.T) {
	g, err := builder.Build([]builder.Record{
		{A: "A", B: "B", Score: "0.1"},
		{A: "B", B: "A", Score: "0.6"},
	})
	require.NoError(t, err)

	w, _ := g.EdgeWeight("A", "B")
	assert.Equal(t, 0.6, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_TrimsScoreWhitespace(t *testing.T) {
	g, err := builder.Build([]builder.Record{{A: "A", B: "B", Score: " 0.25\r"}})
	require.NoError(t, err)

	w, _ := g.EdgeWeight("A", "B")
	assert.Equal(t, 0.25, w)
}

func TestBuild_MalformedAbortsBatch(t *testing.T) {
	cases := map[string][]builder.Record{
		"bad score":   {{A: "A", B: "B", Score: "0.8"}, {A: "B", B: "C", Score: "high"}},
		"empty score": {{A: "A", B: "B", Score: ""}},
		"empty A":     {{A: "", B: "B", Score: "0.1"}},
		"empty B":     {{A: "A", B: "", Score: "0.1"}},
	}
	for name, recs := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.Build(recs)
			require.ErrorIs(t, err, builder.ErrMalformedRecord)
			assert.Nil(t, g)
		})
	}
}

func TestBuild_NonFiniteScore(t *testing.T) {
	for _, s := range []string{"NaN", "Inf", "-Inf"} {
		g, err := builder.Build([]builder.Record{{A: "A", B: "B", Score: s}})
		require.ErrorIs(t, err, graph.ErrInvalidWeight, s)
		assert.Nil(t, g)
	}
}

func TestInto_MalformedLeavesGraphUntouched(t *testing.T) {
	g, err := builder.Build(triangleRecords)
	require.NoError(t, err)

	err = builder.Into(g, []builder.Record{
		{A: "A", B: "D", Score: "0.5"},
		{A: "D", B: "E", Score: "x"},
	})
	require.ErrorIs(t, err, builder.ErrMalformedRecord)
	assert.False(t, g.HasNode("D"))
}

func TestBuild_OutOfRangeWeightsAccepted(t *testing.T) {
	g, err := builder.Build([]builder.Record{{A: "A", B: "B", Score: "1.7"}, {A: "B", B: "C", Score: "-3"}})
	require.NoError(t, err)
	w, _ := g.EdgeWeight("B", "C")
	assert.Equal(t, -3.0, w)
}

func TestBuild_MinScore(t *testing.T) {
	g, err := builder.Build(triangleRecords, builder.WithMinScore(0.75))
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge("B", "C"))

	_, err = builder.Build([]builder.Record{{A: "A", B: "B", Score: "?"}}, builder.WithMinScore(2))
	require.ErrorIs(t, err, builder.ErrMalformedRecord, "filtered records are still validated")
}

func TestBuild_EmptyInput(t *testing.T) {
	g, err := builder.Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

func TestTopologies(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{From: "1", To: "2", Weight: 1}, {From: "2", To: "3", Weight: 1}}, g.Edges())

	g, err = builder.BuildGraph([]builder.Option{builder.WithWeight(0.5)}, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	w, _ := g.EdgeWeight("5", "1")
	assert.Equal(t, 0.5, w)

	g, err = builder.BuildGraph([]builder.Option{builder.WithIDScheme(func(i int) string { return string(rune('a' + i)) })}, builder.Star(4))
	require.NoError(t, err)
	nbrs, _ := g.Neighbors("a")
	assert.Equal(t, []string{"b", "c", "d"}, nbrs)

	g, err = builder.BuildGraph(nil, builder.Path(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, g.Nodes())
}

func TestTopologies_Errors(t *testing.T) {
	for _, c := range []builder.Constructor{builder.Complete(0), builder.Path(0), builder.Cycle(2), builder.Star(1)} {
		_, err := builder.BuildGraph(nil, c)
		require.ErrorIs(t, err, builder.ErrTooFewNodes)
	}
	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeight(1.0 / zero()) })
}

func zero() float64 { return 0 }
