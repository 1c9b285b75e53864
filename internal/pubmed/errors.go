// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors returned by the E-utilities client. Every failure the client returns
// wraps exactly one of these, so callers can tell a transport problem from a
// payload they could not decode.
var (
	// ErrTransport indicates a network failure or a non-200 HTTP status.
	ErrTransport = errors.New("PubMed transport error")

	// ErrRateLimited indicates NCBI rejected the request with HTTP 429.
	ErrRateLimited = errors.New("PubMed rate limit exceeded")

	// ErrMalformedResponse indicates a response body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed PubMed response")
)

// APIError describes a failed E-utilities call.
type APIError struct {
	StatusCode int    // HTTP status; 0 when the server reported an error in a 200 body
	Endpoint   string // "esearch" or "efetch"
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("PubMed %s error (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("PubMed %s error: %s", e.Endpoint, e.Message)
}

// Unwrap maps the error onto ErrRateLimited or ErrTransport.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return ErrTransport
}

// IsTransport reports whether err is a transport failure, including rate
// limiting.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrRateLimited)
}

// IsRateLimited reports whether err is an HTTP 429 from NCBI.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsMalformed reports whether err is a decode failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
