package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseArticle extracts a full article from a fetched article page. It
// returns nil when the page lacks the expected article container, which is a
// normal outcome for photo and video archive pages rather than an error.
// pageURL is the URL the document was fetched from; the category is derived
// from it.
func ParseArticle(doc *goquery.Document, pageURL string) *Article {
	container := findByClass(doc.Selection, "article", articleContainerClass)
	if container == nil {
		return nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	rawDate := publicationDateMeta(doc)
	pubDateTime := ParsePublicationDateTime(rawDate)

	author, _ := doc.Find(`meta[name="` + authorMetaName + `"]`).First().Attr("content")

	metadata := ArticleMetadata{
		URL:                pageURL,
		Title:              title,
		Category:           CategoryFromURL(pageURL),
		IsFree:             true,
		PublicationDateRaw: rawDate,
		PublicationDate:    pubDateTime.Date,
		PublicationTime:    pubDateTime.Time,
		Timezone:           pubDateTime.Timezone,
		Author:             author,
	}

	return &Article{
		Metadata: metadata,
		Content:  extractParagraphs(container),
		Tags:     extractTags(container),
		Images:   extractImages(container),
	}
}

// publicationDateMeta returns the raw publication timestamp from the page's
// meta tags. The article:published_time property wins over the publish-date
// named meta when both are present.
func publicationDateMeta(doc *goquery.Document) string {
	meta := doc.Find(`meta[property="` + publishedTimeProperty + `"]`).First()
	if meta.Length() == 0 {
		meta = doc.Find(`meta[name="` + publishDateMetaName + `"]`).First()
	}
	content, _ := meta.Attr("content")
	return content
}

// extractParagraphs collects body paragraphs from every content wrapper in
// the article, dropping empty ones and editor's-pick callouts.
func extractParagraphs(container *goquery.Selection) []string {
	paragraphs := []string{}
	container.Find("div#" + contentWrapperID).Each(func(_ int, wrapper *goquery.Selection) {
		wrapper.Find("p").Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			if text != "" && !strings.HasPrefix(text, editorPickPrefix) {
				paragraphs = append(paragraphs, text)
			}
		})
	})
	return paragraphs
}

// extractTags collects tag names from the article's tags container.
// Duplicates are kept in document order.
func extractTags(container *goquery.Selection) []string {
	tags := []string{}
	container.Find("div#" + tagsContainerID).First().Find("a").Each(func(_ int, a *goquery.Selection) {
		if tag := strings.TrimSpace(a.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	return tags
}

// extractImages collects every image in the article with a non-empty src,
// skipping the house ad logo. Alt text is passed through verbatim.
func extractImages(container *goquery.Selection) []Image {
	images := []Image{}
	container.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" || src == adsLogoPath {
			return
		}
		alt, _ := img.Attr("alt")
		images = append(images, Image{Src: src, Alt: alt})
	})
	return images
}
