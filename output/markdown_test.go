package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"temposcrape/scrape"
)

// TestSanitizeFilename covers the title-to-filename rules.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Berita Hari Ini", "berita-hari-ini"},
		{"site suffix stripped", "Berita Hari Ini | tempo.co", "berita-hari-ini"},
		{"special chars spaced", "Jokowi: \"Ekonomi\" Naik 5%", "jokowi-ekonomi-naik-5"},
		{"separator runs collapsed", "a - - b __ c", "a-b-c"},
		{"leading and trailing trimmed", "--- Berita ---", "berita"},
		{"empty falls back", "!!!", "untitled-article"},
		{"blank falls back", "", "untitled-article"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title))
		})
	}
}

// TestSanitizeFilename_Truncation verifies long titles cap at 100
// characters.
func TestSanitizeFilename_Truncation(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("abc ", 60))
	assert.LessOrEqual(t, len(got), 100)
}

func markdownArticle() scrape.Article {
	return scrape.Article{
		Metadata: scrape.ArticleMetadata{
			URL:             "/politik/berita-penting-123",
			Title:           "Berita Penting | tempo.co",
			Category:        "politik",
			IsFree:          false,
			PublicationDate: "2025-09-12",
			PublicationTime: "15:22:00",
		},
		Content: []string{"Paragraf pertama.", "", "Paragraf kedua."},
		Tags:    []string{"Politik", "DPR RI"},
	}
}

// TestRenderMarkdown verifies the full document shape: metadata header,
// title heading, paragraph blocks.
func TestRenderMarkdown(t *testing.T) {
	got := RenderMarkdown(markdownArticle())

	want := strings.Join([]string{
		"Category: politik",
		"Published at: 2025/09/12 15:22:00",
		"Tags: #premium #Politik #DPRRI",
		"URL: https://tempo.co/politik/berita-penting-123",
		"",
		"# Berita Penting",
		"",
		"Paragraf pertama.",
		"",
		"Paragraf kedua.",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestRenderMarkdown_FreeArticle verifies the #free tag and that absolute
// URLs are left alone.
func TestRenderMarkdown_FreeArticle(t *testing.T) {
	article := markdownArticle()
	article.Metadata.IsFree = true
	article.Metadata.URL = "https://www.tempo.co/politik/berita-penting-123"
	article.Tags = nil

	got := RenderMarkdown(article)

	assert.Contains(t, got, "Tags: #free\n")
	assert.Contains(t, got, "URL: https://www.tempo.co/politik/berita-penting-123")
}

// TestRenderMarkdown_MissingDate verifies a partially parsed timestamp
// leaves the published line empty.
func TestRenderMarkdown_MissingDate(t *testing.T) {
	article := markdownArticle()
	article.Metadata.PublicationTime = ""

	assert.Contains(t, RenderMarkdown(article), "Published at: \n")
}

// TestConvertBundle verifies the end-to-end projection of a written bundle
// into per-category Markdown trees, including filename collision handling.
func TestConvertBundle(t *testing.T) {
	w, _ := newTestWriter(t)

	articles := []scrape.Article{
		testArticle("/politik/a", "Judul Sama", "politik", true),
		testArticle("/politik/b", "Judul Sama", "politik", true),
		testArticle("/hukum/c", "Kasus Baru", "hukum", true),
	}
	bundleDir, err := w.WriteIndex(articles, scrape.Options{ExtractContent: true, Categorize: true}, CategorizedBundle)
	require.NoError(t, err)

	outDir := t.TempDir()
	total, err := ConvertBundle(bundleDir, outDir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	assert.FileExists(t, filepath.Join(outDir, "politik", "judul-sama.md"))
	assert.FileExists(t, filepath.Join(outDir, "politik", "judul-sama-1.md"))
	assert.FileExists(t, filepath.Join(outDir, "hukum", "kasus-baru.md"))

	content, err := os.ReadFile(filepath.Join(outDir, "hukum", "kasus-baru.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Kasus Baru")
	assert.Contains(t, string(content), "Paragraf pertama.")
}

// TestConvertBundle_SkipsMetadata verifies metadata.json is not treated as
// a category file.
func TestConvertBundle_SkipsMetadata(t *testing.T) {
	w, _ := newTestWriter(t)

	bundleDir, err := w.WriteIndex(
		[]scrape.Article{testArticle("/politik/a", "Satu", "politik", true)},
		scrape.Options{ExtractContent: true, Categorize: true},
		CategorizedBundle,
	)
	require.NoError(t, err)

	outDir := t.TempDir()
	total, err := ConvertBundle(bundleDir, outDir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, err = os.Stat(filepath.Join(outDir, "metadata"))
	assert.True(t, os.IsNotExist(err))
}
