// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// FormatTable writes rows as a human-readable table to w.
func FormatTable(w io.Writer, rows []types.ReportRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers found with non-academic authors.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-4s  %-30s  %-30s  %s\n",
		"PubmedID", "Title", "Year", "Non-academic Author(s)", "Company Affiliation(s)", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 150))

	for _, r := range rows {
		fmt.Fprintf(w, "%-10s  %-50s  %-4s  %-30s  %-30s  %s\n",
			r.ID,
			truncate(r.Title, 50),
			r.PublicationYear,
			truncate(strings.Join(r.NonAcademicAuthors, AuthorSeparator), 30),
			truncate(strings.Join(r.CompanyAffiliations, AffiliationSeparator), 30),
			r.CorrespondingEmail)
	}

	fmt.Fprintf(w, "\n%d papers with non-academic authors\n", len(rows))
}

// FormatJSON writes rows as indented JSON to w. An empty report is written
// as [] rather than null.
func FormatJSON(w io.Writer, rows []types.ReportRow) error {
	if rows == nil {
		rows = []types.ReportRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// truncate shortens s to at most max characters, cutting on a rune boundary.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
