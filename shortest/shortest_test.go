package shortest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/graph"
	"github.com/katalvlaran/ppinet/shortest"
)

// diamond: A-B, A-C, B-D, C-D all weight 1, plus a heavier shortcut A-D.
func diamond(t *testing.T, shortcut float64) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "D", shortcut))

	return g
}

func TestFromGraph_Snapshot(t *testing.T) {
	g := diamond(t, 3)
	require.NoError(t, g.AddEdge("D", "D", 0.5))
	topo, err := shortest.FromGraph(g, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, topo.IDs)
	require.Len(t, topo.Adj[3], 3, "self-loop dropped")
	for i, arcs := range topo.Adj {
		for k := 1; k < len(arcs); k++ {
			assert.Less(t, arcs[k-1].To, arcs[k].To, "node %d not ascending", i)
		}
	}
}

func TestFromGraph_NegativeWeight(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", -1))
	_, err := shortest.FromGraph(g, false)
	require.ErrorIs(t, err, shortest.ErrNegativeWeight)

	// Unit mode ignores weights entirely.
	_, err = shortest.FromGraph(g, true)
	require.NoError(t, err)
}

func TestFrom_WeightedCountsEqualPaths(t *testing.T) {
	// The shortcut ties with the two 2-hop routes: three shortest paths to D.
	topo, err := shortest.FromGraph(diamond(t, 2), false)
	require.NoError(t, err)
	r, err := shortest.From(topo, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 1, 2}, r.Dist)
	assert.Equal(t, []float64{1, 1, 1, 3}, r.Sigma)
	assert.Equal(t, 0, r.Order[0])
	assert.Equal(t, 3, r.Order[3])
	assert.ElementsMatch(t, []int{0, 1, 2}, r.Pred[3])
}

func TestFrom_WeightedStrictImprovementResets(t *testing.T) {
	// A-D costs 3 and is discovered first, then replaced by 2-hop routes.
	topo, err := shortest.FromGraph(diamond(t, 3), false)
	require.NoError(t, err)
	r, err := shortest.From(topo, 0)
	require.NoError(t, err)

	assert.Equal(t, 2.0, r.Dist[3])
	assert.Equal(t, 2.0, r.Sigma[3])
	assert.Equal(t, []int{1, 2}, r.Pred[3])
}

func TestFrom_UnitIgnoresWeights(t *testing.T) {
	topo, err := shortest.FromGraph(diamond(t, 3), true)
	require.NoError(t, err)
	r, err := shortest.From(topo, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 1, 1}, r.Dist)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Order)
	assert.Equal(t, []int{0}, r.Pred[3])
}

func TestFrom_Unreachable(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddNode("Z"))
	for _, unit := range []bool{false, true} {
		topo, err := shortest.FromGraph(g, unit)
		require.NoError(t, err)
		r, err := shortest.From(topo, 0)
		require.NoError(t, err)

		assert.True(t, math.IsInf(r.Dist[2], 1))
		assert.False(t, r.Reached(2))
		assert.True(t, r.Reached(0))
		assert.Zero(t, r.Sigma[2])
		assert.Nil(t, r.Pred[2])
		assert.Equal(t, []int{0, 1}, r.Order)
	}
}

func TestFrom_SourceOutOfRange(t *testing.T) {
	topo, err := shortest.FromGraph(graph.New(), false)
	require.NoError(t, err)
	_, err = shortest.From(topo, 0)
	require.ErrorIs(t, err, shortest.ErrSourceOutOfRange)
}
