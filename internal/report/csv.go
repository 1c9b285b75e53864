// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Separators used when a multi-valued field is flattened to one cell.
const (
	AuthorSeparator      = "; "
	AffiliationSeparator = ", "
)

// Columns is the fixed report column order.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// ErrInvalidReport is returned by ValidateCSV for a malformed report.
var ErrInvalidReport = errors.New("invalid report")

// Record flattens row into cells in Columns order.
func Record(row types.ReportRow) []string {
	return []string{
		row.ID,
		row.Title,
		row.PublicationYear,
		strings.Join(row.NonAcademicAuthors, AuthorSeparator),
		strings.Join(row.CompanyAffiliations, AffiliationSeparator),
		row.CorrespondingEmail,
	}
}

// FromRecord is the inverse of Record.
func FromRecord(rec []string) (types.ReportRow, error) {
	if len(rec) != len(Columns) {
		return types.ReportRow{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(rec))
	}
	return types.ReportRow{
		ID:                  rec[0],
		Title:               rec[1],
		PublicationYear:     rec[2],
		NonAcademicAuthors:  splitField(rec[3], AuthorSeparator),
		CompanyAffiliations: splitField(rec[4], AffiliationSeparator),
		CorrespondingEmail:  rec[5],
	}, nil
}

func splitField(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

// WriteCSV writes a header line followed by one line per row.
func WriteCSV(w io.Writer, rows []types.ReportRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(Record(row)); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", row.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a report written by WriteCSV.
func ReadCSV(r io.Reader) ([]types.ReportRow, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidReport)
	}
	if !slices.Equal(records[0], Columns) {
		return nil, fmt.Errorf("%w: header %q does not match %q", ErrInvalidReport, records[0], Columns)
	}

	rows := make([]types.ReportRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ValidateCSV checks that r holds a report with the expected header and that
// every row carries an identifier, a title, and at least one non-academic
// author. It returns the number of data rows.
func ValidateCSV(r io.Reader) (int, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		line := i + 2
		switch {
		case row.ID == "":
			return 0, fmt.Errorf("%w: line %d: missing %s", ErrInvalidReport, line, Columns[0])
		case row.Title == "":
			return 0, fmt.Errorf("%w: line %d: missing %s", ErrInvalidReport, line, Columns[1])
		case len(row.NonAcademicAuthors) == 0:
			return 0, fmt.Errorf("%w: line %d: missing %s", ErrInvalidReport, line, Columns[3])
		}
	}
	return len(rows), nil
}
