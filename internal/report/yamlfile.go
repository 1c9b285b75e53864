// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// File is a complete report: the query that produced it, run statistics, and
// the rows. It is the document written by WriteYAML and WriteSQLite.
type File struct {
	Query   string            `json:"query" yaml:"query"`
	Summary Summary           `json:"summary" yaml:"summary"`
	Rows    []types.ReportRow `json:"rows" yaml:"rows"`
}

// Summary stores run statistics and a timestamp.
type Summary struct {
	ArticlesFetched int       `json:"articles_fetched" yaml:"articles_fetched"`
	ArticlesKept    int       `json:"articles_kept" yaml:"articles_kept"`
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewFile assembles a File stamped with the current time.
func NewFile(query string, fetched int, rows []types.ReportRow) File {
	return File{
		Query: query,
		Summary: Summary{
			ArticlesFetched: fetched,
			ArticlesKept:    len(rows),
			Timestamp:       time.Now().UTC(),
		},
		Rows: rows,
	}
}

// WriteYAML writes f as a YAML document to w.
func WriteYAML(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return enc.Close()
}

// ReadYAML loads a report written by WriteYAML.
func ReadYAML(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &f, nil
}
