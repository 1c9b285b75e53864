// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func ptr(s string) *string { return &s }

func TestArticle(t *testing.T) {
	raw := types.RawArticle{
		ID:      "38000001",
		Title:   ptr("  Targeted   therapy\n in oncology "),
		PubYear: ptr("2023"),
		Authors: []types.RawAuthor{
			{ForeName: ptr("John"), LastName: ptr("Doe"), Affiliation: ptr("Dept of Oncology, Genentech Inc., john.doe@genentech.com")},
			{ForeName: ptr("Jane"), LastName: ptr("Smith"), Affiliation: ptr("Harvard University")},
		},
	}

	a := Article(raw, nil)

	assert.Equal(t, "38000001", a.ID)
	assert.Equal(t, "Targeted therapy in oncology", a.Title)
	assert.Equal(t, "2023", a.PublicationYear)
	require.Len(t, a.Authors, 2)
	assert.Equal(t, types.Author{
		Name:        "John Doe",
		Affiliation: "Dept of Oncology, Genentech Inc., john.doe@genentech.com",
		Email:       "john.doe@genentech.com",
	}, a.Authors[0])
	assert.Equal(t, types.Author{Name: "Jane Smith", Affiliation: "Harvard University"}, a.Authors[1])
}

func TestArticleDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawArticle
		want types.Article
	}{
		{
			name: "everything missing",
			raw:  types.RawArticle{},
			want: types.Article{ID: "N/A", Title: "N/A", PublicationYear: "N/A", Authors: []types.Author{}},
		},
		{
			name: "blank title and year",
			raw:  types.RawArticle{ID: "1", Title: ptr("   "), PubYear: ptr("")},
			want: types.Article{ID: "1", Title: "N/A", PublicationYear: "N/A", Authors: []types.Author{}},
		},
		{
			name: "author missing last name",
			raw: types.RawArticle{ID: "2", Authors: []types.RawAuthor{
				{ForeName: ptr("Cher")},
			}},
			want: types.Article{ID: "2", Title: "N/A", PublicationYear: "N/A", Authors: []types.Author{
				{Name: "Unknown"},
			}},
		},
		{
			name: "author with blank fore name and no affiliation",
			raw: types.RawArticle{ID: "3", Authors: []types.RawAuthor{
				{ForeName: ptr(" "), LastName: ptr("Doe")},
			}},
			want: types.Article{ID: "3", Title: "N/A", PublicationYear: "N/A", Authors: []types.Author{
				{Name: "Unknown"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Article(tt.raw, nil))
		})
	}
}

func TestArticleUsesInjectedExtractor(t *testing.T) {
	var seen []string
	extract := func(s string) string {
		seen = append(seen, s)
		return "fixed@example.com"
	}
	raw := types.RawArticle{ID: "4", Authors: []types.RawAuthor{
		{ForeName: ptr("A"), LastName: ptr("B"), Affiliation: ptr("Somewhere")},
		{ForeName: ptr("C"), LastName: ptr("D")},
	}}

	a := Article(raw, extract)

	assert.Equal(t, []string{"Somewhere", ""}, seen)
	assert.Equal(t, "fixed@example.com", a.Authors[0].Email)
	assert.Equal(t, "fixed@example.com", a.Authors[1].Email)
}

func TestArticlePreservesAuthorOrder(t *testing.T) {
	names := []string{"Zed", "Amy", "Bob", "Amy"}
	var raw types.RawArticle
	for _, n := range names {
		raw.Authors = append(raw.Authors, types.RawAuthor{ForeName: ptr(n), LastName: ptr("X")})
	}

	a := Article(raw, nil)

	require.Len(t, a.Authors, len(names))
	for i, n := range names {
		assert.Equal(t, n+" X", a.Authors[i].Name)
	}
}
