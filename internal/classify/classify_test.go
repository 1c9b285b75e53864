// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"genentech affiliation", "Dept of Oncology, Genentech Inc., john.doe@genentech.com", "john.doe@genentech.com"},
		{"trailing period", "Department of Oncology, Genentech Inc., South San Francisco, CA, USA. john.doe@genentech.com.", "john.doe@genentech.com"},
		{"name prefix", "Dr. John Doe, johndoe@biotech.com", "johndoe@biotech.com"},
		{"no email", "No email here", ""},
		{"empty", "", ""},
		{"first of two", "a@x.com and b@y.org", "a@x.com"},
		{"plus and percent", "Contact: first+tag%x@mail.example.co.uk", "first+tag%x@mail.example.co.uk"},
		{"one letter extension", "user@host.c", ""},
		{"bare at sign", "@ only", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractEmailArbitraryText(t *testing.T) {
	inputs := []string{
		strings.Repeat("@", 1000),
		"\x00\xff\xfe@@..com",
		"ünïcödé@exämple.de",
		strings.Repeat("a.", 500) + "@" + strings.Repeat("b-", 500),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ExtractEmail(in) })
	}
}

func TestIsNonAcademic(t *testing.T) {
	c := NewDefault()
	tests := []struct {
		name        string
		affiliation string
		email       string
		want        bool
	}{
		{"university", "Harvard University", "jane@harvard.edu", false},
		{"company keyword and commercial email", "Biotech Inc", "alice@biotech.com", true},
		{"company name only", "Genentech, South San Francisco", "", true},
		{"commercial email only", "Department of Oncology", "jd@example.com", true},
		{"edu email no keyword", "Department of Oncology", "jd@example.edu", false},
		{"empty affiliation and email", "", "", false},
		{"academic overrides company", "Pfizer Research Lab", "", false},
		{"academic overrides commercial email", "Stanford University", "someone@gmail.com", false},
		{"hospital", "Massachusetts General Hospital", "", false},
		{"medical school", "Harvard Medical School", "", false},
		{"research center", "Fred Hutch Cancer Research Center", "", false},
		{"uppercase company", "NOVARTIS INSTITUTES FOR BIOMEDICAL RESEARCH", "", false},
		{"mixed case company", "AstraZeneca, Gothenburg, Sweden", "", true},
		{"llc", "Acme Therapeutics LLC", "", true},
		{"org domain counts as commercial", "Some Foundation", "x@foundation.org", true},
		{"co tld", "Independent", "x@startup.co", true},
		{"country tld after co", "Independent", "x@startup.co.uk", false},
		{"email without domain", "Independent", "x@", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsNonAcademic(tt.affiliation, tt.email))
		})
	}
}

func TestAcademicOverrideAllCombinations(t *testing.T) {
	rules := DefaultRules()
	c := New(rules)
	for _, ak := range rules.AcademicKeywords {
		for _, ck := range append(rules.CompanyKeywords, rules.CompanyNames...) {
			for _, aff := range []string{
				ak + " " + ck,
				strings.ToUpper(ck) + ", " + strings.ToUpper(ak),
				"Dept. of Oncology, " + ck + "; " + ak + " of Basel",
			} {
				assert.False(t, c.IsNonAcademic(aff, "someone@corp.com"), "affiliation %q", aff)
			}
		}
	}
}

func TestCompanyKeywordWithoutAcademic(t *testing.T) {
	rules := DefaultRules()
	c := New(rules)
	for _, ck := range append(rules.CompanyKeywords, rules.CompanyNames...) {
		for _, aff := range []string{ck, strings.ToUpper(ck), "Dept. of Oncology, " + ck + ", Basel"} {
			assert.True(t, c.IsNonAcademic(aff, ""), "affiliation %q", aff)
		}
	}
}

func TestExplain(t *testing.T) {
	c := NewDefault()

	d := c.Explain("Genentech Inc.", "john@genentech.com")
	assert.True(t, d.NonAcademic)
	assert.Equal(t, "", d.AcademicKeyword)
	assert.Equal(t, "inc", d.CompanyKeyword)
	assert.Equal(t, "genentech.com", d.CommercialDomain)

	d = c.Explain("Roche Diagnostics, Institute of Chemistry", "")
	assert.False(t, d.NonAcademic)
	assert.Equal(t, "institute", d.AcademicKeyword)
	assert.Equal(t, "roche", d.CompanyKeyword)
}

func TestCommercialDomainUsesFinalLabelOnly(t *testing.T) {
	c := NewDefault()
	tests := []struct {
		email string
		want  string
	}{
		{"x@acme.com", "acme.com"},
		{"x@acme.co", "acme.co"},
		{"x@mail.com.cn", ""},
		{"x@startup.co.uk", ""},
		{"x@net.example.de", ""},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			d := c.Explain("", tt.email)
			assert.Equal(t, tt.want, d.CommercialDomain)
			assert.Equal(t, tt.want != "", d.NonAcademic)
		})
	}
}

func TestInjectedRules(t *testing.T) {
	c := New(Rules{
		AcademicKeywords: []string{"Academy"},
		CompanyKeywords:  []string{"GmbH"},
		CommercialTLDs:   []string{".de"},
	})

	assert.True(t, c.IsNonAcademic("Bayer GmbH", ""))
	assert.False(t, c.IsNonAcademic("Bayer GmbH Academy", ""))
	assert.True(t, c.IsNonAcademic("Somewhere", "a@bayer.de"))
	assert.False(t, c.IsNonAcademic("Genentech Inc.", "a@genentech.com"), "default lists must not leak in")
}

func TestRulesWithDefaults(t *testing.T) {
	r := Rules{CompanyNames: []string{"lilly"}}.WithDefaults()
	d := DefaultRules()

	assert.Equal(t, []string{"lilly"}, r.CompanyNames)
	assert.Equal(t, d.AcademicKeywords, r.AcademicKeywords)
	assert.Equal(t, d.CompanyKeywords, r.CompanyKeywords)
	assert.Equal(t, d.CommercialTLDs, r.CommercialTLDs)
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())

	err := Rules{CompanyKeywords: []string{"inc", "  "}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company_keywords[1]")
}
