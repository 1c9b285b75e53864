// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report classifies article authors, keeps articles with at least one
// non-academic author, and renders the resulting rows as CSV, a console
// table, JSON, YAML, or a SQLite export.
package report

import (
	"iter"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// AuthorClassifier decides whether an author is non-academic.
// *classify.Classifier implements it.
type AuthorClassifier interface {
	IsNonAcademic(affiliation, email string) bool
}

// Builder derives report rows from normalized articles.
type Builder struct {
	classifier AuthorClassifier
}

// NewBuilder returns a Builder using c.
func NewBuilder(c AuthorClassifier) *Builder {
	return &Builder{classifier: c}
}

// Classify applies the classifier to every author of a, in author order.
func (b *Builder) Classify(a types.Article) []types.ClassifiedAuthor {
	out := make([]types.ClassifiedAuthor, len(a.Authors))
	for i, au := range a.Authors {
		out[i] = types.ClassifiedAuthor{
			Author:      au,
			NonAcademic: b.classifier.IsNonAcademic(au.Affiliation, au.Email),
		}
	}
	return out
}

// BuildRow returns the report row for a, or false when a has no
// non-academic author.
func (b *Builder) BuildRow(a types.Article) (types.ReportRow, bool) {
	row := types.ReportRow{
		ID:              a.ID,
		Title:           a.Title,
		PublicationYear: a.PublicationYear,
	}
	seen := make(map[string]bool)

	for _, ca := range b.Classify(a) {
		if !ca.NonAcademic {
			continue
		}
		row.NonAcademicAuthors = append(row.NonAcademicAuthors, ca.Name)
		if !seen[ca.Affiliation] {
			seen[ca.Affiliation] = true
			row.CompanyAffiliations = append(row.CompanyAffiliations, ca.Affiliation)
		}
		if row.CorrespondingEmail == "" {
			row.CorrespondingEmail = ca.Email
		}
	}

	if len(row.NonAcademicAuthors) == 0 {
		return types.ReportRow{}, false
	}
	return row, true
}

// Build returns the rows of every qualifying article in articles, preserving
// source order.
func (b *Builder) Build(articles iter.Seq[types.Article]) []types.ReportRow {
	var rows []types.ReportRow
	for a := range articles {
		if row, ok := b.BuildRow(a); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
