package stringdb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/ppinet/builder"
)

// Column names read from the STRING TSV header.
const (
	ColumnA     = "preferredName_A"
	ColumnB     = "preferredName_B"
	ColumnScore = "score"
)

// Decode reads a STRING TSV network table.
//
// The first non-blank line is the header. Blank lines are skipped. Scores are
// passed through as text; parsing and validation happen in builder.Build.
// An input with a header and no rows yields an empty, non-nil slice.
func Decode(r io.Reader) ([]builder.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Decode: empty input: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode: header: %w", err)
	}
	ia, ib, is, err := locate(header)
	if err != nil {
		return nil, err
	}
	need := max(ia, ib, is) + 1

	records := make([]builder.Record, 0, 64)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Decode: %w", err)
		}
		if len(row) < need {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("Decode: line %d: %d < %d fields: %w", line, len(row), need, ErrShortRow)
		}
		records = append(records, builder.Record{A: row[ia], B: row[ib], Score: row[is]})
	}

	return records, nil
}

// locate returns the indexes of the three required columns.
func locate(header []string) (a, b, score int, err error) {
	a, b, score = -1, -1, -1
	for i, name := range header {
		switch name {
		case ColumnA:
			a = i
		case ColumnB:
			b = i
		case ColumnScore:
			score = i
		}
	}
	for i, idx := range [3]int{a, b, score} {
		if idx < 0 {
			name := [3]string{ColumnA, ColumnB, ColumnScore}[i]
			return 0, 0, 0, fmt.Errorf("Decode: %q: %w", name, ErrMissingColumn)
		}
	}

	return a, b, score, nil
}
