package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"Brand A" - Google News</title>
    <item>
      <title>Brand A recall announced - Example News</title>
      <link>https://example.com/a</link>
      <pubDate>Mon, 02 Jun 2025 09:30:00 GMT</pubDate>
    </item>
    <item>
      <title>Brand A lawsuit settled</title>
      <link>https://example.com/b</link>
    </item>
    <item>
      <title></title>
      <link>https://example.com/ignored</link>
    </item>
  </channel>
</rss>`

func TestGoogleNews_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rss/search", r.URL.Path)
		assert.Equal(t, "Brand A", r.URL.Query().Get("q"))
		assert.Equal(t, "en-US", r.URL.Query().Get("hl"))
		assert.Equal(t, "US", r.URL.Query().Get("gl"))
		assert.Equal(t, "US:en", r.URL.Query().Get("ceid"))
		assert.Equal(t, "ReputationDesk/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	gn := NewGoogleNews(srv.URL, srv.Client())

	arts, err := gn.Fetch(context.Background(), "Brand A", "en")
	require.NoError(t, err)
	require.Len(t, arts, 2)

	assert.Equal(t, "Brand A recall announced", arts[0].Title)
	assert.Equal(t, "Example News", arts[0].Source)
	assert.Equal(t, "https://example.com/a", arts[0].URL)
	assert.False(t, arts[0].PublishedAt.IsZero())

	// No publisher suffix keeps the feed default.
	assert.Equal(t, "Brand A lawsuit settled", arts[1].Title)
	assert.Equal(t, "Google News", arts[1].Source)
	assert.True(t, arts[1].PublishedAt.IsZero())
}

func TestGoogleNews_LocaleMapping(t *testing.T) {
	cases := []struct {
		lang, hl, gl, ceid string
	}{
		{"es", "es-ES", "ES", "ES:es"},
		{"ru", "ru-RU", "RU", "RU:ru"},
		{"fr", "fr-FR", "FR", "FR:fr"},
		{"de", "en-US", "US", "US:en"}, // unsupported falls back to English
	}
	for _, tc := range cases {
		t.Run(tc.lang, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.hl, r.URL.Query().Get("hl"))
				assert.Equal(t, tc.gl, r.URL.Query().Get("gl"))
				assert.Equal(t, tc.ceid, r.URL.Query().Get("ceid"))
				_, _ = w.Write([]byte(sampleFeed))
			}))
			defer srv.Close()

			gn := NewGoogleNews(srv.URL, srv.Client())
			_, err := gn.Fetch(context.Background(), "Brand A", tc.lang)
			assert.NoError(t, err)
		})
	}
}

func TestGoogleNews_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gn := NewGoogleNews(srv.URL, srv.Client())
	_, err := gn.Fetch(context.Background(), "Brand A", "en")
	assert.Error(t, err)
}

func TestGoogleNews_MalformedFeedIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	gn := NewGoogleNews(srv.URL, srv.Client())
	_, err := gn.Fetch(context.Background(), "Brand A", "en")
	assert.Error(t, err)
}

func TestSplitHeadline(t *testing.T) {
	title, pub := splitHeadline("Brand A recall - Example News")
	assert.Equal(t, "Brand A recall", title)
	assert.Equal(t, "Example News", pub)

	title, pub = splitHeadline("No suffix here")
	assert.Equal(t, "No suffix here", title)
	assert.Equal(t, "Google News", pub)

	// Only the last dash-separated segment is the publisher.
	title, pub = splitHeadline("Brand A - recall - Example News")
	assert.Equal(t, "Brand A - recall", title)
	assert.Equal(t, "Example News", pub)
}
