// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw article records from the article source into
// fully populated types.Article values. Normalization never fails: absent or
// blank fields fall back to sentinel defaults.
package normalize

import (
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// EmailExtractor finds an email address in free text.
type EmailExtractor func(text string) string

// Article normalizes raw. A nil extract uses classify.ExtractEmail.
func Article(raw types.RawArticle, extract EmailExtractor) types.Article {
	if extract == nil {
		extract = classify.ExtractEmail
	}

	a := types.Article{
		ID:              orDefault(cleanText(raw.ID), types.NotAvailable),
		Title:           orDefault(deref(raw.Title), types.NotAvailable),
		PublicationYear: orDefault(deref(raw.PubYear), types.NotAvailable),
		Authors:         make([]types.Author, 0, len(raw.Authors)),
	}
	for _, ra := range raw.Authors {
		a.Authors = append(a.Authors, author(ra, extract))
	}
	return a
}

func author(ra types.RawAuthor, extract EmailExtractor) types.Author {
	fore, last := deref(ra.ForeName), deref(ra.LastName)
	name := types.UnknownAuthor
	if fore != "" && last != "" {
		name = fore + " " + last
	}
	aff := deref(ra.Affiliation)
	return types.Author{
		Name:        name,
		Affiliation: aff,
		Email:       extract(aff),
	}
}

// deref returns the cleaned value of s, or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return cleanText(*s)
}

// cleanText trims s and collapses internal whitespace runs to one space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
