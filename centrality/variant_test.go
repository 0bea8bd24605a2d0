package centrality_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/centrality"
)

func TestParseVariant_Canonical(t *testing.T) {
	for _, v := range centrality.Variants() {
		got, err := centrality.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Len(t, centrality.Variants(), 11)
}

func TestParseVariant_NoFuzzyMatching(t *testing.T) {
	for _, s := range []string{
		"", "degree", "DEGREE", " Degree", "Degree ", "Degree\n",
		"Degree Centrality", "Current Flow Betweeenness Centrality", "PageRank",
	} {
		_, err := centrality.ParseVariant(s)
		require.ErrorIs(t, err, centrality.ErrUnknownVariant, "%q", s)
	}
}

func TestVariant_NamesAndLabels(t *testing.T) {
	assert.Equal(t, "CurrentFlowBetweenness", centrality.CurrentFlowBetweenness.String())
	assert.Equal(t, "Current Flow Betweenness Centrality", centrality.CurrentFlowBetweenness.Label())
	assert.Equal(t, "Second Order Centrality", centrality.SecondOrder.Label())
	assert.Equal(t, "Variant(42)", centrality.Variant(42).String())
	assert.False(t, centrality.Variant(-1).Valid())

	seen := map[string]bool{}
	for _, v := range centrality.Variants() {
		assert.False(t, seen[v.Label()], "duplicate label %s", v.Label())
		seen[v.Label()] = true
	}
}

func TestVariant_TextRoundTrip(t *testing.T) {
	raw, err := json.Marshal(struct {
		V centrality.Variant `json:"v"`
	}{centrality.Load})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"Load"}`, string(raw))

	var in struct {
		V centrality.Variant `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v":"Harmonic"}`), &in))
	assert.Equal(t, centrality.Harmonic, in.V)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"v":"harmonic"}`), &in), centrality.ErrUnknownVariant)

	_, err = centrality.Variant(99).MarshalText()
	require.ErrorIs(t, err, centrality.ErrUnknownVariant)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { centrality.WithMaxIter(0) })
	assert.Panics(t, func() { centrality.WithTolerance(0) })
	assert.Panics(t, func() { centrality.WithTolerance(-1) })
	assert.Panics(t, func() { centrality.WithMaxDenseNodes(0) })
	assert.Panics(t, func() { centrality.WithBackend(nil) })

	o := centrality.DefaultOptions()
	assert.Equal(t, 100, o.MaxIter)
	assert.Equal(t, 1e-6, o.Tolerance)
	assert.Equal(t, 2000, o.MaxDenseNodes)
	assert.Equal(t, "native", o.Backend.Name())
	assert.False(t, o.UnitWeights)
}
