package scrape

import (
	"strings"

	"github.com/mmcdole/gofeed"
)

// StubsFromFeed converts rubric RSS feed items into article stubs, capped at
// limit, in feed order. The feed carries no access-tier marker, so every
// stub is treated as free; premium detection only exists on the HTML index.
func StubsFromFeed(feed *gofeed.Feed, limit int) []ArticleStub {
	stubs := make([]ArticleStub, 0, limit)

	for _, item := range feed.Items {
		if len(stubs) >= limit {
			break
		}
		if item.Link == "" {
			continue
		}
		stubs = append(stubs, ArticleStub{
			URL:      item.Link,
			Title:    strings.TrimSpace(item.Title),
			Category: CategoryFromURL(item.Link),
			IsFree:   true,
		})
	}

	return stubs
}
