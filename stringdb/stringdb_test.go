package stringdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/stringdb"
)

const sampleTSV = "stringId_A\tstringId_B\tpreferredName_A\tpreferredName_B\tncbiTaxonId\tscore\tnscore\n" +
	"9606.ENSP00000229239\t9606.ENSP00000354511\tTPH1\tCOMT\t9606\t0.626\t0\n" +
	"9606.ENSP00000354511\t9606.ENSP00000358434\tCOMT\tSLC18A2\t9606\t0.713\t0\n" +
	"\n" +
	"9606.ENSP00000358434\t9606.ENSP00000229239\tSLC18A2\tTPH1\t9606\t0.905\t0\n"

func TestDecode_ByHeaderName(t *testing.T) {
	records, err := stringdb.Decode(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	assert.Equal(t, []builder.Record{
		{A: "TPH1", B: "COMT", Score: "0.626"},
		{A: "COMT", B: "SLC18A2", Score: "0.713"},
		{A: "SLC18A2", B: "TPH1", Score: "0.905"},
	}, records)

	g, err := builder.Build(records)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDecode_ColumnOrderIrrelevant(t *testing.T) {
	in := "score\tpreferredName_B\tpreferredName_A\r\n0.4\tB\tA\r\n"
	records, err := stringdb.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []builder.Record{{A: "A", B: "B", Score: "0.4"}}, records)
}

func TestDecode_HeaderOnly(t *testing.T) {
	records, err := stringdb.Decode(strings.NewReader("preferredName_A\tpreferredName_B\tscore\n"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDecode_Errors(t *testing.T) {
	_, err := stringdb.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, stringdb.ErrMissingColumn)

	// A hand-made export with its own column names.
	_, err = stringdb.Decode(strings.NewReader("ID1\tID2\tScore\n1\t2\t0.8\n"))
	require.ErrorIs(t, err, stringdb.ErrMissingColumn)
	assert.Contains(t, err.Error(), "preferredName_A")

	_, err = stringdb.Decode(strings.NewReader("preferredName_A\tpreferredName_B\tscore\nA\tB\n"))
	require.ErrorIs(t, err, stringdb.ErrShortRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestClient_NetworkURL(t *testing.T) {
	c := stringdb.NewClient("https://string-db.org/", stringdb.SpeciesHuman)
	assert.Equal(t,
		"https://string-db.org/api/tsv/network?identifiers=TPH1%0dCOMT%0dHTR2C&species=9606",
		c.NetworkURL([]string{"TPH1", "COMT", "HTR2C"}))

	c = stringdb.NewClient("http://x", 10090, stringdb.WithCaller("ppinet"))
	assert.Equal(t, "http://x/api/tsv/network?identifiers=Tph1&species=10090&caller_identity=ppinet",
		c.NetworkURL([]string{"Tph1"}))
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotIDs, gotSpecies string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotIDs = r.URL.Query().Get("identifiers")
		gotSpecies = r.URL.Query().Get("species")
		_, _ = w.Write([]byte(sampleTSV))
	}))
	defer srv.Close()

	c := stringdb.NewClient(srv.URL, stringdb.SpeciesHuman, stringdb.WithHTTPClient(srv.Client()))
	records, err := c.Fetch(context.Background(), []string{"TPH1", "COMT", "SLC18A2"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "/api/tsv/network", gotPath)
	assert.Equal(t, "TPH1\rCOMT\rSLC18A2", gotIDs)
	assert.Equal(t, "9606", gotSpecies)
}

func TestClient_FetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Error: not found", http.StatusBadRequest)
	}))
	defer srv.Close()
	c := stringdb.NewClient(srv.URL, stringdb.SpeciesHuman)

	_, err := c.Fetch(context.Background(), nil)
	require.ErrorIs(t, err, stringdb.ErrNoProteins)

	_, err = c.Fetch(context.Background(), []string{"NOPE"})
	require.ErrorIs(t, err, stringdb.ErrStatus)
	assert.Contains(t, err.Error(), "400")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Fetch(ctx, []string{"TPH1"})
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)

	dead := stringdb.NewClient("http://127.0.0.1:1", stringdb.SpeciesHuman)
	_, err = dead.Fetch(context.Background(), []string{"TPH1"})
	require.ErrorIs(t, err, stringdb.ErrNetwork)
}
