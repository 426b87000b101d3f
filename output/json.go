// Package output serializes scraped articles into their persisted forms:
// a single JSON document, a categorized multi-file bundle with a manifest,
// or a tree of per-article Markdown files projected from a bundle.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"temposcrape/scrape"
)

// Target selects the output shape for an index run, decided once up front.
type Target int

const (
	// SingleDocument writes one JSON document, flat or grouped by category.
	SingleDocument Target = iota
	// CategorizedBundle writes a directory with one JSON file per category
	// plus a metadata.json manifest.
	CategorizedBundle
)

const (
	fileTimestampLayout = "20060102_150405"
	metaTimestampLayout = "2006/01/02 15:04:05"
)

// Writer persists scraping results under a base directory.
type Writer struct {
	dir string
	log *zap.Logger

	// now is swapped out in tests for stable filenames.
	now func() time.Time
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string, log *zap.Logger) *Writer {
	return &Writer{dir: dir, log: log, now: time.Now}
}

// indexMetadata is the manifest block describing an index run. Categories
// is present only for categorized output.
type indexMetadata struct {
	Type            string          `json:"type"`
	Timestamp       string          `json:"timestamp"`
	ScrapingOptions scrapingOptions `json:"scraping_options"`
	TotalArticles   int             `json:"total_articles"`
	Categories      *orderedObject  `json:"categories,omitempty"`
}

// scrapingOptions echoes the run configuration into the manifest.
type scrapingOptions struct {
	ExtractContent bool   `json:"extract_content"`
	StartPage      int    `json:"start_page"`
	EndPage        int    `json:"end_page"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Rubric         string `json:"rubric"`
	ArticlePerPage int    `json:"article_per_page"`
	Categorize     bool   `json:"categorize"`
}

// indexDocument is the single-document shape: metadata plus either a flat
// article list or a category-keyed object.
type indexDocument struct {
	Metadata indexMetadata `json:"metadata"`
	Articles any           `json:"articles"`
}

// simplifiedArticle is the metadata-only projection of an article.
type simplifiedArticle struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Category string `json:"category"`
	IsFree   bool   `json:"is_free"`
}

// WriteIndex persists the result of an index run and returns the path of
// the written document or bundle directory.
func (w *Writer) WriteIndex(articles []scrape.Article, opts scrape.Options, target Target) (string, error) {
	now := w.now()
	meta := indexMetadata{
		Type:      "index",
		Timestamp: now.Format(metaTimestampLayout),
		ScrapingOptions: scrapingOptions{
			ExtractContent: opts.ExtractContent,
			StartPage:      opts.StartPage,
			EndPage:        opts.EndPage,
			StartDate:      opts.StartDate,
			EndDate:        opts.EndDate,
			Rubric:         opts.Rubric,
			ArticlePerPage: opts.ArticlePerPage,
			Categorize:     opts.Categorize,
		},
		TotalArticles: len(articles),
	}

	if target == CategorizedBundle {
		return w.writeBundle(articles, meta, opts, now)
	}
	return w.writeDocument(articles, meta, opts, now)
}

// writeDocument writes the single-document form. With categorization on,
// articles are grouped under their category in first-seen order and the
// manifest gains per-category counts.
func (w *Writer) writeDocument(articles []scrape.Article, meta indexMetadata, opts scrape.Options, now time.Time) (string, error) {
	var articlesValue any = projectArticles(articles, opts.ExtractContent)

	if opts.Categorize {
		order, byCategory := groupByCategory(articles)
		grouped := newOrderedObject()
		counts := newOrderedObject()
		for _, category := range order {
			grouped.set(category, projectArticles(byCategory[category], opts.ExtractContent))
			counts.set(category, len(byCategory[category]))
		}
		articlesValue = grouped
		meta.Categories = counts
	}

	name := opts.OutputName
	if name == "" {
		name = "indeks_" + now.Format(fileTimestampLayout)
	}
	path := filepath.Join(w.dir, name+".json")

	if err := w.writeJSON(path, indexDocument{Metadata: meta, Articles: articlesValue}); err != nil {
		return "", err
	}
	w.log.Info("saved articles", zap.Int("count", len(articles)), zap.String("path", path))
	return path, nil
}

// writeBundle writes one JSON file per category plus the metadata.json
// manifest, all inside a directory named from the output name or the run
// timestamp. Category filenames follow normal overwrite semantics; no
// de-duplication counter is applied.
func (w *Writer) writeBundle(articles []scrape.Article, meta indexMetadata, opts scrape.Options, now time.Time) (string, error) {
	name := opts.OutputName
	if name == "" {
		name = "indeks_" + now.Format(fileTimestampLayout)
	}
	dir := filepath.Join(w.dir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bundle directory: %w", err)
	}

	order, byCategory := groupByCategory(articles)
	counts := newOrderedObject()

	for _, category := range order {
		group := byCategory[category]
		counts.set(category, len(group))

		file := newOrderedObject()
		file.set(category, projectArticles(group, opts.ExtractContent))
		if err := w.writeJSON(filepath.Join(dir, category+".json"), file); err != nil {
			return "", err
		}
	}

	meta.Categories = counts
	if err := w.writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}

	w.log.Info("saved categorized bundle",
		zap.Int("count", len(articles)),
		zap.Int("categories", len(order)),
		zap.String("path", dir))
	return dir, nil
}

// WriteArticle persists a single-article run as one flat JSON document
// containing exactly that article's fields. Categorization never applies
// here.
func (w *Writer) WriteArticle(article scrape.Article, outputName string) (string, error) {
	name := outputName
	if name == "" {
		name = "article_" + w.now().Format(fileTimestampLayout)
	}
	path := filepath.Join(w.dir, name+".json")

	if err := w.writeJSON(path, article); err != nil {
		return "", err
	}
	w.log.Info("saved article", zap.String("path", path))
	return path, nil
}

// writeJSON marshals v with two-space indentation and writes it, creating
// the base directory on first use. Write failures propagate to the caller;
// silent data loss would be worse than a crash.
func (w *Writer) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// projectArticles keeps the full article records for content runs and the
// four-field metadata projection otherwise.
func projectArticles(articles []scrape.Article, fullContent bool) any {
	if fullContent {
		return articles
	}
	simplified := make([]simplifiedArticle, 0, len(articles))
	for _, a := range articles {
		simplified = append(simplified, simplifiedArticle{
			URL:      a.Metadata.URL,
			Title:    a.Metadata.Title,
			Category: a.Metadata.Category,
			IsFree:   a.Metadata.IsFree,
		})
	}
	return simplified
}

// groupByCategory buckets articles by category, recording first-seen
// category order.
func groupByCategory(articles []scrape.Article) ([]string, map[string][]scrape.Article) {
	var order []string
	byCategory := make(map[string][]scrape.Article)
	for _, a := range articles {
		category := a.Metadata.Category
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], a)
	}
	return order, byCategory
}

// orderedObject marshals as a JSON object whose keys keep insertion order,
// which encoding/json's sorted map marshaling would destroy.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]any)}
}

func (o *orderedObject) set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
