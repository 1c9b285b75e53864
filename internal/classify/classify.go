// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author is academic or non-academic
// (industry) from the affiliation text and email address, and extracts email
// addresses embedded in free text.
package classify

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first email address in text, or "" when there is
// none.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// Decision explains a classification.
type Decision struct {
	// AcademicKeyword is the first academic keyword found, if any.
	AcademicKeyword string `json:"academic_keyword,omitempty" yaml:"academic_keyword,omitempty"`

	// CompanyKeyword is the first company keyword or company name found, if any.
	CompanyKeyword string `json:"company_keyword,omitempty" yaml:"company_keyword,omitempty"`

	// CommercialDomain is set when the email domain ends in a commercial TLD.
	CommercialDomain string `json:"commercial_domain,omitempty" yaml:"commercial_domain,omitempty"`

	// NonAcademic is the final verdict.
	NonAcademic bool `json:"non_academic" yaml:"non_academic"`
}

// Classifier applies a Rules set. It holds no mutable state and is safe for
// concurrent use.
type Classifier struct {
	academic []string
	company  []string
	tlds     map[string]bool
}

// New builds a Classifier from rules. Lists are used as given; call
// Rules.WithDefaults first to fill empty lists.
func New(rules Rules) *Classifier {
	c := &Classifier{
		academic: lowerAll(rules.AcademicKeywords),
		company:  append(lowerAll(rules.CompanyKeywords), lowerAll(rules.CompanyNames)...),
		tlds:     make(map[string]bool, len(rules.CommercialTLDs)),
	}
	for _, tld := range lowerAll(rules.CommercialTLDs) {
		c.tlds[strings.TrimPrefix(tld, ".")] = true
	}
	return c
}

// NewDefault returns a Classifier over DefaultRules.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// IsNonAcademic reports whether the author is non-academic: no academic
// keyword in affiliation, and either a company keyword in affiliation or a
// commercial email domain.
func (c *Classifier) IsNonAcademic(affiliation, email string) bool {
	return c.Explain(affiliation, email).NonAcademic
}

// Explain classifies and reports which signals fired.
func (c *Classifier) Explain(affiliation, email string) Decision {
	var d Decision
	lower := strings.ToLower(affiliation)

	d.AcademicKeyword = firstContained(lower, c.academic)
	d.CompanyKeyword = firstContained(lower, c.company)
	if domain := emailDomain(email); domain != "" && c.tlds[extension(domain)] {
		d.CommercialDomain = domain
	}

	d.NonAcademic = d.AcademicKeyword == "" && (d.CompanyKeyword != "" || d.CommercialDomain != "")
	return d
}

func firstContained(s string, keywords []string) string {
	if s == "" {
		return ""
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return kw
		}
	}
	return ""
}

// emailDomain returns the lowercased text after the last "@", or "" when the
// address has no domain. See extension for which part of it is checked.
func emailDomain(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[idx+1:]))
}

// extension returns the final dot-separated label of domain. Only this label
// is matched against the commercial list, so country-coded domains such as
// mail.com.cn or startup.co.uk are not commercial even though an inner label
// is. This is stricter than matching a commercial label anywhere in the
// domain.
func extension(domain string) string {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return ""
	}
	return domain[idx+1:]
}
