package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"temposcrape/scrape"
)

// siteTitleSuffix is the site branding appended to article titles; it is
// stripped for headings and filenames.
const siteTitleSuffix = " | tempo.co"

const untitledFilename = "untitled-article"

var (
	nonFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-_.]`)
	separatorRuns    = regexp.MustCompile(`[\s\-_]+`)
	nonTagChars      = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// ConvertBundle projects an already-written categorized JSON bundle into a
// tree of per-article Markdown files, one directory per category. It is
// decoupled from the scraping pipeline and only reads what WriteIndex
// produced. Returns the number of articles converted.
func ConvertBundle(inputDir, outputDir string, log *zap.Logger) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read bundle directory: %w", err)
	}

	total := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || name == "metadata.json" {
			continue
		}
		category := strings.TrimSuffix(name, ".json")

		count, err := convertCategoryFile(filepath.Join(inputDir, name), category, outputDir, log)
		if err != nil {
			log.Error("failed to convert category file", zap.String("file", name), zap.Error(err))
			continue
		}
		log.Info("converted category", zap.String("category", category), zap.Int("articles", count))
		total += count
	}
	return total, nil
}

// convertCategoryFile renders every article of one per-category JSON file.
func convertCategoryFile(path, category, outputDir string, log *zap.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var payload map[string][]scrape.Article
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	articles := payload[category]

	categoryDir := filepath.Join(outputDir, category)
	if err := os.MkdirAll(categoryDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create category directory: %w", err)
	}

	count := 0
	for _, article := range articles {
		target := uniquePath(categoryDir, SanitizeFilename(article.Metadata.Title))
		if err := os.WriteFile(target, []byte(RenderMarkdown(article)), 0644); err != nil {
			return count, fmt.Errorf("failed to write %s: %w", target, err)
		}
		count++
	}
	return count, nil
}

// RenderMarkdown renders one article as a Markdown document: four metadata
// lines, a blank line, the H1 title, a blank line, then one paragraph per
// block separated by blank lines.
func RenderMarkdown(article scrape.Article) string {
	lines := []string{
		formatMetadata(article),
		"",
		"# " + stripSiteSuffix(article.Metadata.Title),
		"",
	}
	for _, paragraph := range article.Content {
		if p := strings.TrimSpace(paragraph); p != "" {
			lines = append(lines, p, "")
		}
	}
	return strings.Join(lines, "\n")
}

// formatMetadata builds the unquoted key-value header. The tags line leads
// with the access tier; the URL line prefixes the site origin onto premium
// relative URLs.
func formatMetadata(article scrape.Article) string {
	meta := article.Metadata

	publishedAt := ""
	if meta.PublicationDate != "" && meta.PublicationTime != "" {
		publishedAt = strings.ReplaceAll(meta.PublicationDate, "-", "/") + " " + meta.PublicationTime
	}

	tags := []string{"#free"}
	if !meta.IsFree {
		tags = []string{"#premium"}
	}
	for _, tag := range article.Tags {
		if clean := nonTagChars.ReplaceAllString(tag, ""); clean != "" {
			tags = append(tags, "#"+clean)
		}
	}

	url := meta.URL
	if !meta.IsFree && url != "" && !strings.HasPrefix(url, "http") {
		url = scrape.SiteOrigin + url
	}

	return strings.Join([]string{
		"Category: " + meta.Category,
		"Published at: " + publishedAt,
		"Tags: " + strings.Join(tags, " "),
		"URL: " + url,
	}, "\n")
}

// SanitizeFilename derives a filesystem-safe, lower-case filename stem from
// an article title: site suffix stripped, unsafe characters spaced out,
// separator runs collapsed to single hyphens, trimmed, and truncated to 100
// characters, with a fixed fallback for titles that sanitize away entirely.
func SanitizeFilename(title string) string {
	title = stripSiteSuffix(title)

	name := nonFilenameChars.ReplaceAllString(title, " ")
	name = separatorRuns.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		return untitledFilename
	}
	return strings.ToLower(name)
}

// uniquePath appends an incrementing numeric suffix until the .md filename
// is free.
func uniquePath(dir, stem string) string {
	path := filepath.Join(dir, stem+".md")
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.md", stem, counter))
	}
}

func stripSiteSuffix(title string) string {
	if i := strings.Index(title, siteTitleSuffix); i >= 0 {
		return title[:i]
	}
	return title
}
