package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseListing extracts up to limit article stubs from one index listing
// page, in document order. A page without the expected listing container
// yields an empty slice, not an error; the caller logs that as a soft miss.
//
// Each candidate entry is a direct child of the container and must carry a
// link reachable through figure > figcaption > p > a; entries missing any
// part of that chain are skipped. The limit applies to candidate entries,
// not extracted stubs: only the first limit children are considered, so a
// skipped entry still consumes a slot and fewer than limit stubs can come
// back from a full page.
func ParseListing(doc *goquery.Document, limit int) []ArticleStub {
	container := findByClass(doc.Selection, "div", listContainerClass)
	if container == nil {
		return nil
	}

	stubs := make([]ArticleStub, 0, limit)

	items := container.ChildrenFiltered("div")
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= limit {
			return false
		}

		link := item.Find("figure").First().
			Find("figcaption").First().
			Find("p").First().
			Find("a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}

		stubs = append(stubs, ArticleStub{
			URL:      href,
			Title:    strings.TrimSpace(link.Text()),
			Category: CategoryFromURL(href),
			IsFree:   isListingLinkFree(link),
		})
		return true
	})

	return stubs
}

// isListingLinkFree reports whether a listing link lacks the premium marker
// span. No marker means the article is free.
func isListingLinkFree(link *goquery.Selection) bool {
	return findByClass(link, "span", premiumMarkerClass) == nil
}

// CategoryFromURL derives an article's category from the first non-empty
// path segment of its URL. Relative URLs are resolved against the site
// origin first; a URL with no path segments gets the default sentinel
// category.
func CategoryFromURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "/") {
		rawURL = SiteOrigin + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DefaultCategory
	}

	for _, segment := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
		if segment != "" {
			return segment
		}
	}
	return DefaultCategory
}

// findByClass returns the first descendant element of the given tag whose
// class attribute equals class exactly, or nil when none matches. The site's
// markup is only addressable by full utility-class strings, which CSS class
// selectors cannot express.
func findByClass(root *goquery.Selection, tag, class string) *goquery.Selection {
	var found *goquery.Selection
	root.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if attr, _ := s.Attr("class"); attr == class {
			found = s
			return false
		}
		return true
	})
	return found
}
