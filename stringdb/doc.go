// Package stringdb retrieves protein-protein interaction records from the
// STRING database (https://string-db.org) and decodes its TSV network format
// into builder.Record values.
//
// Only the three columns the graph needs are read: preferredName_A,
// preferredName_B and score. Columns are located by header name, so the
// column order and any additional columns of the STRING response do not
// matter.
//
// # Example
//
//	c := stringdb.NewClient(stringdb.DefaultBaseURL, stringdb.SpeciesHuman)
//	records, err := c.Fetch(ctx, []string{"TPH1", "COMT", "SLC18A2"})
//	if err != nil {
//	    return err
//	}
//	g, err := builder.Build(records)
package stringdb
