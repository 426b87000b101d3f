// Package scrape contains the core of the Tempo.co scraper: the article
// data model, the index and article page extractors, access filtering, and
// the run orchestrator. HTML fetching and artifact persistence are injected
// capabilities; this package never opens sockets or files itself.
package scrape

// ArticleStub is a lightweight article reference extracted from one entry of
// an index listing page, before any content extraction. Stubs are never
// mutated after creation.
type ArticleStub struct {
	URL      string
	Title    string
	Category string
	IsFree   bool
}

// Image is a single image found inside an article body.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// ArticleMetadata carries everything known about an article short of its
// body. Field names and order form the persisted JSON contract.
type ArticleMetadata struct {
	URL                string `json:"url"`
	Title              string `json:"title"`
	Category           string `json:"category"`
	IsFree             bool   `json:"is_free"`
	PublicationDateRaw string `json:"publication_date_raw"`
	PublicationDate    string `json:"publication_date"`
	PublicationTime    string `json:"publication_time"`
	Timezone           string `json:"timezone"`
	Author             string `json:"author"`
}

// Article is a complete extracted article. Content holds one string per body
// paragraph; when extraction was skipped or failed it instead holds a single
// sentinel string explaining why, so consumers can tell "no content found"
// from "not attempted".
type Article struct {
	Metadata ArticleMetadata `json:"metadata"`
	Content  []string        `json:"content"`
	Tags     []string        `json:"tags"`
	Images   []Image         `json:"images"`
}

// stubMetadata builds article metadata from a listing stub alone, used when
// content extraction is skipped or fails before reaching the article page.
func stubMetadata(stub ArticleStub) ArticleMetadata {
	return ArticleMetadata{
		URL:      stub.URL,
		Title:    stub.Title,
		Category: stub.Category,
		IsFree:   stub.IsFree,
	}
}

// stubArticle wraps a stub into a content-less Article for metadata-only
// runs.
func stubArticle(stub ArticleStub) Article {
	return Article{
		Metadata: stubMetadata(stub),
		Content:  []string{},
		Tags:     []string{},
		Images:   []Image{},
	}
}
