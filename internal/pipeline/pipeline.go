// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one query end to end: fetch raw records from a
// Source, normalize them, and keep the rows with non-academic authors.
package pipeline

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/pdiddy/pubmed-fetcher/internal/normalize"
	"github.com/pdiddy/pubmed-fetcher/internal/pubmed"
	"github.com/pdiddy/pubmed-fetcher/internal/report"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Result is the outcome of one run.
type Result struct {
	Query    string
	IDs      int // PubMed IDs returned by the search
	Articles int // records normalized
	Rows     []types.ReportRow
}

// Kept returns the number of report rows.
func (r Result) Kept() int { return len(r.Rows) }

// File wraps the result as a report file for the YAML and SQLite sinks.
func (r Result) File() report.File {
	return report.NewFile(r.Query, r.Articles, r.Rows)
}

// Run searches src for term and builds the report rows. Source errors are
// returned wrapped so pubmed.IsTransport and pubmed.IsMalformed still apply.
// A search with no matches is not an error.
func Run(ctx context.Context, src pubmed.Source, b *report.Builder, term string) (Result, error) {
	res := Result{Query: term}
	start := time.Now()

	raw, n, err := src.Articles(ctx, term)
	if err != nil {
		return res, fmt.Errorf("fetching articles for %q: %w", term, err)
	}
	res.IDs = n

	articles := normalized(raw, &res.Articles)
	res.Rows = b.Build(articles)
	if res.Rows == nil {
		res.Rows = []types.ReportRow{}
	}

	slog.Info("query complete",
		"query", term,
		"ids", res.IDs,
		"articles", res.Articles,
		"kept", res.Kept(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return res, nil
}

// normalized maps raw records to articles lazily, counting them into count.
func normalized(raw iter.Seq[types.RawArticle], count *int) iter.Seq[types.Article] {
	return func(yield func(types.Article) bool) {
		if raw == nil {
			return
		}
		for r := range raw {
			a := normalize.Article(r, nil)
			*count++
			slog.Debug("normalized article", "id", a.ID, "authors", len(a.Authors))
			if !yield(a) {
				return
			}
		}
	}
}
