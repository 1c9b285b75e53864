// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, r Rules)
		errMsg  string
	}{
		{
			name: "overrides listed keys and keeps defaults for the rest",
			content: `company_names:
  - lilly
  - sanofi
commercial_tlds: [com]
`,
			check: func(t *testing.T, r Rules) {
				assert.Equal(t, []string{"lilly", "sanofi"}, r.CompanyNames)
				assert.Equal(t, []string{"com"}, r.CommercialTLDs)
				assert.Equal(t, DefaultRules().AcademicKeywords, r.AcademicKeywords)
			},
		},
		{
			name:    "empty file yields defaults",
			content: "",
			check: func(t *testing.T, r Rules) {
				assert.Equal(t, DefaultRules(), r)
			},
		},
		{
			name:    "blank keyword rejected",
			content: "academic_keywords: [university, \"\"]\n",
			errMsg:  "academic_keywords[1] is blank",
		},
		{
			name:    "malformed yaml",
			content: "academic_keywords: [unterminated\n",
			errMsg:  "parsing rules file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			r, err := LoadRules(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading rules file")
}
