// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Rules is the keyword data the classifier matches against. All matching is
// case-insensitive; Rules values are never modified after construction.
type Rules struct {
	// AcademicKeywords mark an affiliation as academic. An academic match
	// overrides every company signal.
	AcademicKeywords []string `json:"academic_keywords" yaml:"academic_keywords"`

	// CompanyKeywords are generic corporate markers ("inc", "pharma").
	CompanyKeywords []string `json:"company_keywords" yaml:"company_keywords"`

	// CompanyNames are known pharmaceutical companies.
	CompanyNames []string `json:"company_names" yaml:"company_names"`

	// CommercialTLDs are email domain extensions treated as a company signal.
	CommercialTLDs []string `json:"commercial_tlds" yaml:"commercial_tlds"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		AcademicKeywords: []string{
			"university", "college", "institute", "research center",
			"lab", "hospital", "medical school",
		},
		CompanyKeywords: []string{
			"inc", "ltd", "llc", "corporation", "pharma", "biotech", "company",
		},
		CompanyNames: []string{
			"genentech", "pfizer", "novartis", "roche", "astrazeneca", "merck",
		},
		CommercialTLDs: []string{"com", "net", "org", "co", "biz"},
	}
}

// WithDefaults returns a copy of r where every empty list is replaced by the
// corresponding DefaultRules list.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if len(r.AcademicKeywords) == 0 {
		r.AcademicKeywords = d.AcademicKeywords
	}
	if len(r.CompanyKeywords) == 0 {
		r.CompanyKeywords = d.CompanyKeywords
	}
	if len(r.CompanyNames) == 0 {
		r.CompanyNames = d.CompanyNames
	}
	if len(r.CommercialTLDs) == 0 {
		r.CommercialTLDs = d.CommercialTLDs
	}
	return r
}

// Validate rejects blank entries. A blank keyword would match every
// affiliation.
func (r Rules) Validate() error {
	lists := []struct {
		name  string
		words []string
	}{
		{"academic_keywords", r.AcademicKeywords},
		{"company_keywords", r.CompanyKeywords},
		{"company_names", r.CompanyNames},
		{"commercial_tlds", r.CommercialTLDs},
	}
	for _, l := range lists {
		for i, w := range l.words {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("%s[%d] is blank", l.name, i)
			}
		}
	}
	return nil
}

// LoadRules reads a YAML rules file. Lists missing from the file keep their
// defaults.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	r = r.WithDefaults()
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return r, nil
}

// lowerAll returns a lowercased, trimmed copy of words.
func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.ToLower(strings.TrimSpace(w)))
	}
	return out
}
