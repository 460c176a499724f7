package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"morningbrief/internal/models"
)

const (
	maxItemsPerFeed     = 3
	maxItemsPerCategory = 5
)

// newsFeeds maps each category to its fixed RSS feed URLs. Order matters:
// the first feed's entries lead the category.
var newsFeeds = map[models.NewsCategory][]string{
	models.CategoryTop: {
		"https://www.nrk.no/toppsaker.rss",
		"https://www.vg.no/rss/feed/?categories=1069&limit=10",
	},
	models.CategoryWorld: {
		"https://www.nrk.no/verden/toppsaker.rss",
	},
	models.CategorySport: {
		"https://www.nrk.no/sport/toppsaker.rss",
		"https://www.vg.no/rss/feed/?categories=1070&limit=5",
	},
	models.CategoryCulture: {
		"https://www.nrk.no/kultur/toppsaker.rss",
	},
	models.CategoryTech: {
		"https://www.nrk.no/viten/toppsaker.rss",
	},
}

// NewsClient pulls headlines from the fixed NRK/VG RSS feeds via gofeed.
type NewsClient struct {
	parser *gofeed.Parser
	logger *zap.Logger
	feeds  map[models.NewsCategory][]string
}

func NewNewsClient(userAgent string, timeout time.Duration, logger *zap.Logger) *NewsClient {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &NewsClient{
		parser: parser,
		logger: logger,
		feeds:  newsFeeds,
	}
}

// GetNews fetches all categories. A single failing feed only thins out its
// category; the digest is returned as long as anything parsed.
func (c *NewsClient) GetNews(ctx context.Context) (*models.NewsDigest, error) {
	digest := &models.NewsDigest{
		Top:     c.fetchCategory(ctx, models.CategoryTop),
		World:   c.fetchCategory(ctx, models.CategoryWorld),
		Sport:   c.fetchCategory(ctx, models.CategorySport),
		Culture: c.fetchCategory(ctx, models.CategoryCulture),
		Tech:    c.fetchCategory(ctx, models.CategoryTech),
	}
	return digest, nil
}

func (c *NewsClient) fetchCategory(ctx context.Context, category models.NewsCategory) []models.NewsItem {
	var items []models.NewsItem

	for _, feedURL := range c.feeds[category] {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			c.logger.Warn("Failed to parse feed",
				zap.String("url", feedURL),
				zap.String("category", string(category)),
				zap.Error(err))
			continue
		}

		items = append(items, feedItems(feed, feedURL, category)...)
		if len(items) >= maxItemsPerCategory {
			break
		}
	}

	if len(items) > maxItemsPerCategory {
		items = items[:maxItemsPerCategory]
	}
	return items
}

func feedItems(feed *gofeed.Feed, feedURL string, category models.NewsCategory) []models.NewsItem {
	source := "VG"
	if strings.Contains(feedURL, "nrk.no") {
		source = "NRK"
	}

	limit := maxItemsPerFeed
	if len(feed.Items) < limit {
		limit = len(feed.Items)
	}

	items := make([]models.NewsItem, 0, limit)
	for _, entry := range feed.Items[:limit] {
		items = append(items, models.NewsItem{
			Title:    entry.Title,
			Link:     entry.Link,
			Source:   source,
			Category: category,
		})
	}
	return items
}
