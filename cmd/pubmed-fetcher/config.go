// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/internal/pubmed"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func init() {
	viper.SetDefault("source.max_results", pubmed.DefaultMaxResults)
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.user_agent", "pubmed-fetcher/"+version)
	viper.SetDefault("source.tool", "pubmed-fetcher")
	viper.SetDefault("secrets_dir", ".secrets")
}

// sourceConfig builds the Article Source configuration from viper. Credentials
// set in config or PUBMED_FETCHER_SOURCE_* take precedence over secret files.
func sourceConfig() types.SourceConfig {
	return types.SourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("source.timeout"),
			UserAgent: viper.GetString("source.user_agent"),
		},
		MaxResults:        viper.GetInt("source.max_results"),
		RequestsPerSecond: viper.GetFloat64("source.requests_per_second"),
		APIKey:            loadedSecrets.Default(secrets.NCBIAPIKey, viper.GetString("source.api_key")),
		Email:             loadedSecrets.Default(secrets.NCBIEmail, viper.GetString("source.email")),
		Tool:              viper.GetString("source.tool"),
	}
}

// classifierRules returns the rule set from rulesFile when given, otherwise
// from the classifier.* config keys. Lists left empty use the built-in rules.
func classifierRules(rulesFile string) (classify.Rules, error) {
	if rulesFile != "" {
		return classify.LoadRules(rulesFile)
	}
	r := classify.Rules{
		AcademicKeywords: viper.GetStringSlice("classifier.academic_keywords"),
		CompanyKeywords:  viper.GetStringSlice("classifier.company_keywords"),
		CompanyNames:     viper.GetStringSlice("classifier.company_names"),
		CommercialTLDs:   viper.GetStringSlice("classifier.commercial_tlds"),
	}.WithDefaults()
	if err := r.Validate(); err != nil {
		return classify.Rules{}, fmt.Errorf("invalid classifier config: %w", err)
	}
	return r, nil
}
