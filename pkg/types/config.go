package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the PubMed E-utilities article source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the ESearch page size (retmax). Only the first page is
	// fetched (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestsPerSecond caps the request rate. NCBI allows 3 req/s without an
	// API key and 10 req/s with one. Zero picks the matching default.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email and Tool identify the caller to NCBI.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// ReportFormat selects how report rows are rendered.
type ReportFormat string

const (
	FormatTable  ReportFormat = "table"
	FormatCSV    ReportFormat = "csv"
	FormatJSON   ReportFormat = "json"
	FormatYAML   ReportFormat = "yaml"
	FormatSQLite ReportFormat = "sqlite"
)

// Valid reports whether f is one of the known formats.
func (f ReportFormat) Valid() bool {
	switch f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML, FormatSQLite:
		return true
	}
	return false
}

// ReportConfig holds settings for the report sink.
type ReportConfig struct {
	// Format selects the output format.
	Format ReportFormat `json:"format" yaml:"format"`

	// OutputFile is the destination path; empty means stdout.
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}
