// SPDX-License-Identifier: MIT
// Package: ppinet/builder
//
// records.go — interaction records and their ingestion constructor.
//
// Contract:
//   - Score text is trimmed and parsed with strconv.ParseFloat(…, 64).
//   - Empty endpoints or unparsable scores ⇒ ErrMalformedRecord.
//   - Scores parsing to NaN/±Inf ⇒ graph.ErrInvalidWeight.
//   - All records are parsed before any edge is inserted (batch semantics).
//   - Insertion follows input order; duplicates overwrite.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ppinet/graph"
)

const methodRecords = "FromRecords"

// Record is one interaction: two protein identifiers and the confidence
// score as decimal text, exactly as delivered by the data source.
type Record struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Score string `json:"score"`
}

// parsed is a validated record ready for insertion.
type parsed struct {
	a, b string
	w    float64
}

// ParseScore parses the decimal score text of a record.
func ParseScore(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", s, ErrMalformedRecord)
	}

	return w, nil
}

// FromRecords returns a Constructor that inserts records into the graph.
func FromRecords(records []Record) Constructor {
	return func(g *graph.Graph, cfg config) error {
		batch := make([]parsed, 0, len(records))
		for i, r := range records {
			if r.A == "" || r.B == "" {
				return fmt.Errorf("%s: record %d: empty endpoint: %w", methodRecords, i, ErrMalformedRecord)
			}
			w, err := ParseScore(r.Score)
			if err != nil {
				return fmt.Errorf("%s: record %d: %w", methodRecords, i, err)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%s: record %d: score %q: %w", methodRecords, i, r.Score, graph.ErrInvalidWeight)
			}
			batch = append(batch, parsed{a: r.A, b: r.B, w: w})
		}

		for i, p := range batch {
			if p.w < cfg.minScore {
				continue
			}
			if err := g.AddEdge(p.a, p.b, p.w); err != nil {
				return fmt.Errorf("%s: record %d (%s,%s): %w", methodRecords, i, p.a, p.b, err)
			}
		}

		return nil
	}
}
