// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed retrieves article records from the NCBI E-utilities API.
// A query is two sequential calls: ESearch for the matching PubMed IDs, then
// EFetch for the article XML. Only the first page of IDs is fetched.
package pubmed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// eutilsBase is the E-utilities endpoint root. Declared as a var so tests
// can substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const (
	database = "pubmed"

	// DefaultMaxResults is the ESearch page size when none is configured.
	DefaultMaxResults = 10

	// NCBI request rate policy.
	defaultRate    = 3.0
	defaultKeyRate = 10.0
)

// Source produces raw article records for a search term.
type Source interface {
	Articles(ctx context.Context, term string) (iter.Seq[types.RawArticle], int, error)
}

// Client queries ESearch and EFetch.
type Client struct {
	http *httputil.Client
	cfg  types.SourceConfig
}

// NewClient returns a Client for cfg. A nil hc uses an *http.Client with
// cfg.Timeout.
func NewClient(cfg types.SourceConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRate
		if cfg.APIKey != "" {
			rps = defaultKeyRate
		}
	}
	return &Client{
		http: httputil.NewClient(hc, rps, cfg.UserAgent),
		cfg:  cfg,
	}
}

// Articles searches for term and fetches the matching records. The second
// return value is the number of IDs ESearch returned.
func (c *Client) Articles(ctx context.Context, term string) (iter.Seq[types.RawArticle], int, error) {
	ids, err := c.Search(ctx, term)
	if err != nil {
		return nil, 0, err
	}
	raw, err := c.Fetch(ctx, ids)
	if err != nil {
		return nil, len(ids), err
	}
	return slices.Values(raw), len(ids), nil
}

type esearchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
		Error  string   `json:"ERROR"`
	} `json:"esearchresult"`
}

// Search runs ESearch for term and returns up to MaxResults PubMed IDs.
func (c *Client) Search(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is empty")
	}

	params := c.params()
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", fmt.Sprintf("%d", c.cfg.MaxResults))

	body, err := c.get(ctx, "esearch", params)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: esearch: %w", ErrMalformedResponse, err)
	}
	if resp.Result.Error != "" {
		return nil, &APIError{Endpoint: "esearch", Message: resp.Result.Error}
	}

	slog.Info("esearch complete", "term", term, "count", resp.Result.Count, "ids", len(resp.Result.IDList))
	return resp.Result.IDList, nil
}

// Fetch runs EFetch for ids and returns one raw record per article in the
// response. An empty ids slice returns nil without a request.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]types.RawArticle, error) {
	if len(ids) == 0 {
		slog.Info("no PubMed IDs to fetch")
		return nil, nil
	}

	params := c.params()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	body, err := c.get(ctx, "efetch", params)
	if err != nil {
		return nil, err
	}

	raw, err := decodeArticleSet(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: efetch: %w", ErrMalformedResponse, err)
	}
	slog.Debug("efetch complete", "requested", len(ids), "articles", len(raw))
	return raw, nil
}

// params returns the query parameters shared by every call.
func (c *Client) params() url.Values {
	v := url.Values{"db": {database}}
	if c.cfg.APIKey != "" {
		v.Set("api_key", c.cfg.APIKey)
	}
	if c.cfg.Email != "" {
		v.Set("email", c.cfg.Email)
	}
	if c.cfg.Tool != "" {
		v.Set("tool", c.cfg.Tool)
	}
	return v
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/%s.fcgi?%s", eutilsBase, endpoint, params.Encode())

	body, err := c.http.Get(ctx, reqURL)
	if err == nil {
		return body, nil
	}

	var se *httputil.StatusError
	if errors.As(err, &se) {
		return nil, &APIError{StatusCode: se.StatusCode, Endpoint: endpoint, Message: se.Body}
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrTransport, endpoint, err)
}
