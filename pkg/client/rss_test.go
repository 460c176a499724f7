package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"morningbrief/internal/models"
)

func rssBody(count int) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Testfeed</title>`
	for i := 1; i <= count; i++ {
		body += fmt.Sprintf(`<item><title>Sak %d</title><link>https://example.com/%d</link></item>`, i, i)
	}
	return body + `</channel></rss>`
}

func newTestNewsClient(feeds map[models.NewsCategory][]string) *NewsClient {
	c := NewNewsClient("morningbrief-test/1.0", 2*time.Second, zap.NewNop())
	c.feeds = feeds
	return c
}

func TestNewsClient_GetNews_CapsPerFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(10))
	}))
	defer server.Close()

	c := newTestNewsClient(map[models.NewsCategory][]string{
		models.CategorySport: {server.URL},
	})

	digest, err := c.GetNews(context.Background())
	require.NoError(t, err)

	// One feed contributes at most three items.
	assert.Len(t, digest.Sport, 3)
	assert.Equal(t, "Sak 1", digest.Sport[0].Title)
	assert.Equal(t, models.CategorySport, digest.Sport[0].Category)
}

func TestNewsClient_GetNews_CapsPerCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(5))
	}))
	defer server.Close()

	c := newTestNewsClient(map[models.NewsCategory][]string{
		models.CategoryTop: {server.URL, server.URL, server.URL},
	})

	digest, err := c.GetNews(context.Background())
	require.NoError(t, err)

	// Three feeds at three items each still cap at five per category.
	assert.Len(t, digest.Top, 5)
}

func TestNewsClient_GetNews_FailingFeedIsSkipped(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(2))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	c := newTestNewsClient(map[models.NewsCategory][]string{
		models.CategoryTop: {bad.URL, good.URL},
	})

	digest, err := c.GetNews(context.Background())
	require.NoError(t, err)
	assert.Len(t, digest.Top, 2)
}

func TestFeedItems_SourceDetection(t *testing.T) {
	feed := mustParseFeed(t, rssBody(1))

	items := feedItems(feed, "https://www.nrk.no/toppsaker.rss", models.CategoryTop)
	require.Len(t, items, 1)
	assert.Equal(t, "NRK", items[0].Source)

	items = feedItems(feed, "https://www.vg.no/rss/feed/", models.CategoryTop)
	require.Len(t, items, 1)
	assert.Equal(t, "VG", items[0].Source)
}

func mustParseFeed(t *testing.T, body string) *gofeed.Feed {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	c := NewNewsClient("morningbrief-test/1.0", 2*time.Second, zap.NewNop())
	feed, err := c.parser.ParseURLWithContext(server.URL, context.Background())
	require.NoError(t, err)
	return feed
}
