package sources

import (
	"context"
	"crypto/sha256"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"gaizette/internal/types"
)

const summaryMaxLen = 500

// Fetcher retrieves and normalizes RSS/Atom feeds one at a time.
type Fetcher struct {
	parser   *gofeed.Parser
	timeout  time.Duration
	maxItems int
}

func NewFetcher(timeout time.Duration, maxItems int) *Fetcher {
	if maxItems <= 0 {
		maxItems = 50
	}
	return &Fetcher{
		parser:   gofeed.NewParser(),
		timeout:  timeout,
		maxItems: maxItems,
	}
}

// Fetch downloads and parses a single feed. Network or parse failures
// come back as a FeedFetchError so the caller can skip the feed and
// keep going.
func (f *Fetcher) Fetch(ctx context.Context, src types.FeedSource) ([]*types.Article, error) {
	fetchCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	slog.Debug("fetching feed", "source", src.Name, "feed_url", src.URL)
	feed, err := f.parser.ParseURLWithContext(src.URL, fetchCtx)
	if err != nil {
		return nil, types.NewFeedFetchError(src.Name, src.URL, err)
	}

	limit := f.maxItems
	if limit > len(feed.Items) {
		limit = len(feed.Items)
	}

	articles := make([]*types.Article, 0, limit)
	for _, feedItem := range feed.Items[:limit] {
		articles = append(articles, convertToArticle(src, feedItem))
	}

	slog.Info("fetched feed", "source", src.Name, "items", len(feed.Items), "kept", len(articles))
	return articles, nil
}

func convertToArticle(src types.FeedSource, feedItem *gofeed.Item) *types.Article {
	var published time.Time
	if feedItem.PublishedParsed != nil {
		published = *feedItem.PublishedParsed
	} else if feedItem.UpdatedParsed != nil {
		published = *feedItem.UpdatedParsed
	}

	title := strings.TrimSpace(feedItem.Title)
	if title == "" {
		title = "Untitled"
	}

	description := feedItem.Description
	if description == "" && feedItem.Content != "" {
		description = feedItem.Content
	}

	itemID := feedItem.GUID
	if itemID == "" {
		itemID = feedItem.Link
	}
	if itemID == "" {
		itemID = src.Name + "/" + title
	}

	return &types.Article{
		ID:        fmt.Sprintf("%x", sha256.Sum256([]byte(itemID))),
		Title:     title,
		Link:      feedItem.Link,
		Summary:   stripHTML(description),
		Source:    src.Name,
		Published: published,
	}
}

var htmlStripper = bluemonday.StrictPolicy()

// stripHTML removes HTML tags and decodes entities from feed text.
func stripHTML(s string) string {
	s = htmlStripper.Sanitize(s)
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")

	if len(s) > summaryMaxLen {
		s = s[:summaryMaxLen-3] + "..."
	}

	return s
}
