// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides a rate-limited HTTP client shared by the stages
// that call remote APIs.
package httputil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a non-200 response body is kept for the
// error message.
const maxErrorBody = 512

// StatusError is returned by Get when the server answers with a non-200
// status.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Client wraps an *http.Client with a token-bucket rate limiter and a fixed
// User-Agent. Requests never exceed the configured rate; there is no retry.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewClient returns a Client issuing at most rps requests per second. A
// non-positive rps disables limiting. A nil hc uses http.DefaultClient.
func NewClient(hc *http.Client, rps float64, userAgent string) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		http:      hc,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// Do waits for a rate-limit token and sends req. If ctx is cancelled while
// waiting, Do returns the context error without sending.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req = req.Clone(ctx)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	slog.Debug("http request", "method", req.Method, "url", Redact(req.URL))
	return c.http.Do(req)
}

// Get fetches rawURL and returns the response body. A non-200 response yields a
// *StatusError.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        Redact(req.URL),
			Body:       string(snippet),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Redact returns u as a string with credentials and any api_key query
// parameter masked.
func Redact(u *url.URL) string {
	q := u.Query()
	if q.Get("api_key") == "" {
		return u.Redacted()
	}
	q.Set("api_key", "xxxxx")
	cp := *u
	cp.RawQuery = q.Encode()
	return cp.Redacted()
}
