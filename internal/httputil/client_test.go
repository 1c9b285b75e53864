// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), 0, "pubmed-fetcher/test")
	body, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "pubmed-fetcher/test", gotUA)
}

func TestGet_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"API rate limit exceeded"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), 0, "")
	_, err := c.Get(context.Background(), ts.URL+"?api_key=secret")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Contains(t, se.Body, "rate limit")
	assert.NotContains(t, err.Error(), "secret")
}

func TestGet_NoRetry(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), 0, "")
	_, err := c.Get(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_RateLimited(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	// 20 req/s with burst 1: three requests need at least ~100ms.
	c := NewClient(ts.Client(), 20, "")
	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.Get(context.Background(), ts.URL)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDo_ContextCancelledWhileWaiting(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), 0.5, "")
	_, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Get(ctx, ts.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second request must not be sent")
}

func TestRedact(t *testing.T) {
	u, err := url.Parse("https://example.org/esearch.fcgi?db=pubmed&api_key=abc123&term=x")
	require.NoError(t, err)

	got := Redact(u)
	assert.NotContains(t, got, "abc123")
	assert.Contains(t, got, "db=pubmed")

	plain, err := url.Parse("https://example.org/efetch.fcgi?db=pubmed")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/efetch.fcgi?db=pubmed", Redact(plain))
}
