package stringdb

import "errors"

var (
	// ErrMissingColumn indicates a TSV header without a required column.
	ErrMissingColumn = errors.New("stringdb: required column missing")

	// ErrShortRow indicates a data row with fewer fields than the header needs.
	ErrShortRow = errors.New("stringdb: row has too few fields")

	// ErrNoProteins indicates a fetch with an empty identifier list.
	ErrNoProteins = errors.New("stringdb: no protein identifiers")

	// ErrStatus indicates a non-200 response from the STRING API.
	ErrStatus = errors.New("stringdb: unexpected HTTP status")

	// ErrNetwork indicates a transport failure talking to the STRING API.
	ErrNetwork = errors.New("stringdb: network error")
)
