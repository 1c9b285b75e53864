// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// EFetch PubmedArticleSet XML structures. Pointer fields stay nil when the
// element is absent.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    *string        `xml:"MedlineCitation>PMID"`
	Article medlineArticle `xml:"MedlineCitation>Article"`
}

type medlineArticle struct {
	Title   *innerText      `xml:"ArticleTitle"`
	PubDate *pubDate        `xml:"Journal>JournalIssue>PubDate"`
	Authors []medlineAuthor `xml:"AuthorList>Author"`
}

type pubDate struct {
	Year        *string `xml:"Year"`
	MedlineDate *string `xml:"MedlineDate"`
}

type medlineAuthor struct {
	LastName        *string           `xml:"LastName"`
	ForeName        *string           `xml:"ForeName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation *string `xml:"Affiliation"`
}

// innerText captures an element's raw content so inline markup such as
// <i>...</i> inside ArticleTitle does not drop words.
type innerText struct {
	Raw string `xml:",innerxml"`
}

// Text returns the character data of the element with all markup removed.
func (t innerText) Text() string {
	d := xml.NewDecoder(strings.NewReader("<t>" + t.Raw + "</t>"))
	d.Strict = false
	d.Entity = xml.HTMLEntity
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			b.Write(cd)
		}
	}
	return b.String()
}

var leadingYear = regexp.MustCompile(`^\s*(\d{4})`)

// year returns PubDate/Year, or the leading year of PubDate/MedlineDate
// (e.g. "1998 Dec-1999 Jan"), or nil.
func (p *pubDate) year() *string {
	if p == nil {
		return nil
	}
	if p.Year != nil {
		return p.Year
	}
	if p.MedlineDate != nil {
		if m := leadingYear.FindStringSubmatch(*p.MedlineDate); m != nil {
			return &m[1]
		}
	}
	return nil
}

// decodeArticleSet parses an EFetch XML response into raw records.
func decodeArticleSet(r io.Reader) ([]types.RawArticle, error) {
	var set articleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, err
	}

	out := make([]types.RawArticle, 0, len(set.Articles))
	for _, pa := range set.Articles {
		raw := types.RawArticle{
			PubYear: pa.Article.PubDate.year(),
		}
		if pa.PMID != nil {
			raw.ID = strings.TrimSpace(*pa.PMID)
		}
		if pa.Article.Title != nil {
			title := pa.Article.Title.Text()
			raw.Title = &title
		}
		for _, au := range pa.Article.Authors {
			ra := types.RawAuthor{
				ForeName: au.ForeName,
				LastName: au.LastName,
			}
			if len(au.AffiliationInfo) > 0 {
				ra.Affiliation = au.AffiliationInfo[0].Affiliation
			}
			raw.Authors = append(raw.Authors, ra)
		}
		out = append(out, raw)
	}
	return out, nil
}
