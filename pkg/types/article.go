// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-fetcher pipeline.
// The Article Source produces RawArticle values, the normalizer turns them into
// Article values, and the report builder derives one ReportRow per qualifying
// Article.
package types

const (
	// NotAvailable marks an absent title, identifier, or publication year.
	NotAvailable = "N/A"

	// UnknownAuthor is the name given to an author whose fore name or last
	// name is missing.
	UnknownAuthor = "Unknown"
)

// RawAuthor is one author entry as decoded from the source payload. A nil
// field means the element was absent.
type RawAuthor struct {
	ForeName    *string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	LastName    *string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Affiliation *string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// RawArticle is an article record as decoded from the source payload, before
// any defaulting.
type RawArticle struct {
	ID      string      `json:"id" yaml:"id"`
	Title   *string     `json:"title,omitempty" yaml:"title,omitempty"`
	PubYear *string     `json:"pub_year,omitempty" yaml:"pub_year,omitempty"`
	Authors []RawAuthor `json:"authors" yaml:"authors"`
}

// Author is a normalized article author.
type Author struct {
	// Name is "ForeName LastName", or UnknownAuthor.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text affiliation; empty when absent.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// Email is the first address found in Affiliation; empty when none.
	Email string `json:"email" yaml:"email"`
}

// Article is a normalized article record. Every field is populated: absent
// values carry the NotAvailable sentinel.
type Article struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	PublicationYear string   `json:"publication_year" yaml:"publication_year"`
	Authors         []Author `json:"authors" yaml:"authors"`
}

// ClassifiedAuthor pairs an Author with the classifier's decision.
type ClassifiedAuthor struct {
	Author
	NonAcademic bool `json:"non_academic" yaml:"non_academic"`
}

// ReportRow is one line of the industry-author report.
type ReportRow struct {
	ID              string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PublicationYear string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists non-academic author names in author order.
	// Duplicates are kept.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is the de-duplicated set of non-academic
	// affiliations, in first-occurrence order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first non-empty email among non-academic
	// authors.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}
