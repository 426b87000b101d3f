package fetch

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(token string) *Client {
	return New(Config{
		SessionToken:    token,
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
	}, zap.NewNop())
}

// TestFetch_Success verifies a plain fetch parses the body and sends the
// browser User-Agent.
func TestFetch_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><h1>hello</h1></body></html>`))
	}))
	defer server.Close()

	doc, err := newTestClient("").Fetch(server.URL, false)
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Find("h1").Text())
	assert.Equal(t, DefaultUserAgent, gotUA)
}

// TestFetch_RetriesTransientStatus verifies transient statuses are retried
// with backoff until the server recovers.
func TestFetch_RetriesTransientStatus(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`<html><body><p>recovered</p></body></html>`))
	}))
	defer server.Close()

	doc, err := newTestClient("").Fetch(server.URL, false)
	require.NoError(t, err)
	assert.Equal(t, "recovered", doc.Find("p").Text())
	assert.Equal(t, int32(3), attempts.Load())
}

// TestFetch_RetryBudgetExhausted verifies the fetch fails once the retry
// budget runs out.
func TestFetch_RetryBudgetExhausted(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient("").Fetch(server.URL, false)
	require.Error(t, err)
	assert.Equal(t, int32(4), attempts.Load(), "initial attempt plus three retries")
}

// TestFetch_PermanentStatusNotRetried verifies non-transient statuses fail
// immediately.
func TestFetch_PermanentStatusNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient("").Fetch(server.URL, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), attempts.Load())
}

// TestFetch_SessionCookie verifies the credential rides along as a cookie
// when auth is requested.
func TestFetch_SessionCookie(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("TEMPO_SESSION"); err == nil {
			gotCookie = c.Value
		}
		w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	_, err := newTestClient("secret-token").Fetch(server.URL, true)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotCookie)
}

// TestFetch_MissingCredentialDegrades verifies asking for auth without a
// configured credential falls back to an anonymous fetch, not an error.
func TestFetch_MissingCredentialDegrades(t *testing.T) {
	var sawCookie bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("TEMPO_SESSION")
		sawCookie = err == nil
		w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	_, err := newTestClient("").Fetch(server.URL, true)
	require.NoError(t, err)
	assert.False(t, sawCookie)
}

// TestHasCredential verifies credential detection.
func TestHasCredential(t *testing.T) {
	assert.False(t, newTestClient("").HasCredential())
	assert.True(t, newTestClient("tok").HasCredential())
}

// TestFetchFeed verifies rubric feed discovery returns stubs from the feed
// endpoint.
func TestFetchFeed(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Politik</title>
<item><title>Berita</title><link>https://www.tempo.co/politik/berita-1</link></item>
</channel></rss>`))
	}))
	defer server.Close()

	client := New(Config{FeedBaseURL: server.URL}, zap.NewNop())

	stubs, err := client.FetchFeed("politik", 20)
	require.NoError(t, err)
	assert.Equal(t, "/politik", gotPath)
	require.Len(t, stubs, 1)
	assert.Equal(t, "Berita", stubs[0].Title)
	assert.Equal(t, "politik", stubs[0].Category)
}
