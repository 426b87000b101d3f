package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Fetcher is the single inbound capability the core needs: fetch a URL and
// hand back parsed markup. useAuth asks the transport to attach the session
// credential, if one is configured. Implementations own retry policy; the
// core attempts each URL exactly once.
type Fetcher interface {
	Fetch(url string, useAuth bool) (*goquery.Document, error)
}

// FeedFetcher fetches stubs from the rubric RSS feed, the alternate
// discovery path next to index-page scraping.
type FeedFetcher interface {
	FetchFeed(rubric string, limit int) ([]ArticleStub, error)
}

// Runner drives a scraping run: build the listing URL, fetch, extract
// stubs, filter, optionally extract full content, and accumulate. It is
// strictly sequential, with a configurable delay between listing pages.
type Runner struct {
	fetcher Fetcher
	feeds   FeedFetcher
	baseURL string
	useAuth bool
	log     *zap.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewRunner wires a runner from its collaborators. feeds may be nil when
// RSS discovery is not configured; useAuth says whether a session
// credential is available for premium content.
func NewRunner(fetcher Fetcher, feeds FeedFetcher, baseURL string, useAuth bool, log *zap.Logger) *Runner {
	return &Runner{
		fetcher: fetcher,
		feeds:   feeds,
		baseURL: baseURL,
		useAuth: useAuth,
		log:     log,
		sleep:   time.Sleep,
	}
}

// ScrapeIndex walks the configured page range and returns the accumulated
// articles. Pages that fail to fetch or parse contribute nothing; the run
// carries on. Options must already be validated and date-normalized, so the
// same values the run fetched with end up in the persisted manifest.
func (r *Runner) ScrapeIndex(opts Options) []Article {
	if opts.FromFeed {
		return r.collect(FilterByAccess(r.feedStubs(opts), r.useAuth), opts.ExtractContent)
	}

	var all []Article
	for page := opts.StartPage; page <= opts.EndPage; page++ {
		url := BuildIndexURL(r.baseURL, page, opts.StartDate, opts.EndDate, opts.Rubric)
		stubs := r.scrapeListingPage(url, page, opts.ArticlePerPage)
		all = append(all, r.collect(FilterByAccess(stubs, r.useAuth), opts.ExtractContent)...)

		if page < opts.EndPage {
			r.log.Info("waiting before next request", zap.Int("delay_seconds", opts.Delay))
			r.sleep(time.Duration(opts.Delay) * time.Second)
		}
	}
	return all
}

// scrapeListingPage fetches and parses one index page. Transport failures
// and missing listing containers both yield an empty stub list.
func (r *Runner) scrapeListingPage(url string, page, limit int) []ArticleStub {
	r.log.Info("fetching index page", zap.Int("page", page), zap.String("url", url))

	doc, err := r.fetcher.Fetch(url, false)
	if err != nil {
		r.log.Error("failed to fetch index page", zap.Int("page", page), zap.Error(err))
		return nil
	}

	stubs := ParseListing(doc, limit)
	if stubs == nil {
		r.log.Warn("listing container not found", zap.Int("page", page))
		return nil
	}

	r.log.Info("extracted article stubs",
		zap.Int("page", page),
		zap.Int("count", len(stubs)),
		zap.Int("per_page_limit", limit))
	return stubs
}

// feedStubs discovers stubs via the rubric RSS feed.
func (r *Runner) feedStubs(opts Options) []ArticleStub {
	if r.feeds == nil {
		r.log.Error("rss discovery requested but no feed fetcher configured")
		return nil
	}
	stubs, err := r.feeds.FetchFeed(opts.Rubric, opts.ArticlePerPage)
	if err != nil {
		r.log.Error("failed to fetch rubric feed", zap.Error(err))
		return nil
	}
	r.log.Info("extracted article stubs from feed", zap.Int("count", len(stubs)))
	return stubs
}

// collect turns stubs into articles, extracting full content when asked and
// wrapping bare metadata otherwise.
func (r *Runner) collect(stubs []ArticleStub, extractContent bool) []Article {
	if !extractContent {
		articles := make([]Article, 0, len(stubs))
		for _, stub := range stubs {
			articles = append(articles, stubArticle(stub))
		}
		return articles
	}
	return r.ExtractContent(stubs)
}

// ExtractContent fetches full content for each stub in order. Premium stubs
// without a credential are not fetched at all; they and structurally
// unextractable pages get single-sentinel content so the output still
// accounts for every stub.
func (r *Runner) ExtractContent(stubs []ArticleStub) []Article {
	articles := make([]Article, 0, len(stubs))

	for i, stub := range stubs {
		r.log.Info("extracting article content",
			zap.Int("n", i+1),
			zap.Int("total", len(stubs)),
			zap.String("url", stub.URL))

		if !stub.IsFree && !r.useAuth {
			r.log.Warn("skipping premium article without credential", zap.String("url", stub.URL))
			articles = append(articles, sentinelArticle(stub, ContentUnavailableNoAuth))
			continue
		}

		article := r.ExtractArticle(resolveArticleURL(stub.URL))
		if article == nil {
			articles = append(articles, sentinelArticle(stub, ContentUnavailableNotFound))
			continue
		}
		articles = append(articles, *article)
	}

	return articles
}

// ExtractArticle fetches and parses one article page. It returns nil both
// for transport failures and for pages without the article container; the
// two outcomes are deliberately not distinguished.
func (r *Runner) ExtractArticle(url string) *Article {
	doc, err := r.fetcher.Fetch(url, r.useAuth)
	if err != nil {
		r.log.Error("failed to fetch article", zap.String("url", url), zap.Error(err))
		return nil
	}

	article := ParseArticle(doc, url)
	if article == nil {
		r.log.Warn("article element not found", zap.String("url", url))
		return nil
	}
	return article
}

// sentinelArticle wraps a stub with a single explanatory content line.
func sentinelArticle(stub ArticleStub, reason string) Article {
	return Article{
		Metadata: stubMetadata(stub),
		Content:  []string{reason},
		Tags:     []string{},
		Images:   []Image{},
	}
}

// resolveArticleURL makes listing hrefs absolute before fetching.
func resolveArticleURL(url string) string {
	if strings.HasPrefix(url, "/") {
		return SiteOriginWWW + url
	}
	return url
}
