// Package fetch implements the HTTP side of the scraper: a client with a
// browser User-Agent, optional session-cookie credential, and a bounded
// retry policy with exponential backoff for transient status codes. The
// scrape package consumes it through its Fetcher capability interface and
// never sees retries happen.
package fetch

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"temposcrape/scrape"
)

// DefaultUserAgent mirrors the desktop browser string the site expects.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// sessionCookieName carries the opaque site credential for premium content.
const sessionCookieName = "TEMPO_SESSION"

// retryStatuses are the transient statuses worth another attempt.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Config tunes the client. Zero values fall back to defaults.
type Config struct {
	UserAgent       string
	SessionToken    string
	FeedBaseURL     string
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
}

// Client fetches and parses pages. It satisfies scrape.Fetcher and
// scrape.FeedFetcher.
type Client struct {
	http            *http.Client
	feeds           *gofeed.Parser
	userAgent       string
	sessionToken    string
	feedBaseURL     string
	maxRetries      uint64
	initialInterval time.Duration
	log             *zap.Logger
}

// New builds a client from config.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = time.Second
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	feeds := gofeed.NewParser()
	feeds.Client = httpClient

	return &Client{
		http:            httpClient,
		feeds:           feeds,
		userAgent:       cfg.UserAgent,
		sessionToken:    cfg.SessionToken,
		feedBaseURL:     cfg.FeedBaseURL,
		maxRetries:      cfg.MaxRetries,
		initialInterval: cfg.InitialInterval,
		log:             log,
	}
}

// HasCredential reports whether a session credential is configured.
func (c *Client) HasCredential() bool {
	return c.sessionToken != ""
}

// Fetch gets a URL and parses the response body. Transient statuses and
// network errors are retried with exponential backoff up to the retry
// budget; any other non-2xx status fails immediately. Asking for auth
// without a configured credential degrades to an anonymous fetch with a
// warning.
func (c *Client) Fetch(url string, useAuth bool) (*goquery.Document, error) {
	if useAuth && c.sessionToken == "" {
		c.log.Warn("no session credential configured, fetching anonymously", zap.String("url", url))
		useAuth = false
	}

	var doc *goquery.Document
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval

	operation := func() error {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)
		if useAuth {
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionToken})
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if retryStatuses[resp.StatusCode] {
			return fmt.Errorf("transient status %d", resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse HTML: %w", err))
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.log.Warn("retrying fetch",
			zap.String("url", url),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, backoff.WithMaxRetries(policy, c.maxRetries), notify); err != nil {
		return nil, err
	}
	return doc, nil
}

// FetchFeed pulls the rubric RSS feed and converts its items to stubs. An
// empty rubric reads the front feed.
func (c *Client) FetchFeed(rubric string, limit int) ([]scrape.ArticleStub, error) {
	url := c.feedBaseURL
	if rubric != "" {
		url += "/" + rubric
	}

	c.log.Info("fetching rubric feed", zap.String("url", url))
	feed, err := c.feeds.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return scrape.StubsFromFeed(feed, limit), nil
}
