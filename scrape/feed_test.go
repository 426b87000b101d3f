package scrape

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rubricFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tempo.co Politik</title>
    <item>
      <title>  Berita Pertama  </title>
      <link>https://www.tempo.co/politik/berita-pertama-111</link>
    </item>
    <item>
      <title>Tanpa Tautan</title>
    </item>
    <item>
      <title>Berita Kedua</title>
      <link>https://www.tempo.co/hukum/berita-kedua-222</link>
    </item>
  </channel>
</rss>`

// TestStubsFromFeed verifies feed items map to stubs, linkless items are
// skipped, and every stub is treated as free.
func TestStubsFromFeed(t *testing.T) {
	feed, err := gofeed.NewParser().ParseString(rubricFeed)
	require.NoError(t, err)

	stubs := StubsFromFeed(feed, 20)
	require.Len(t, stubs, 2)

	assert.Equal(t, "Berita Pertama", stubs[0].Title, "title should be trimmed")
	assert.Equal(t, "https://www.tempo.co/politik/berita-pertama-111", stubs[0].URL)
	assert.Equal(t, "politik", stubs[0].Category)
	assert.True(t, stubs[0].IsFree)

	assert.Equal(t, "hukum", stubs[1].Category)
}

// TestStubsFromFeed_Cap verifies the limit applies to kept stubs.
func TestStubsFromFeed_Cap(t *testing.T) {
	feed, err := gofeed.NewParser().ParseString(rubricFeed)
	require.NoError(t, err)

	stubs := StubsFromFeed(feed, 1)
	require.Len(t, stubs, 1)
	assert.Equal(t, "Berita Pertama", stubs[0].Title)
}
