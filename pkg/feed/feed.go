// Package feed ingests RSS/Atom sources and normalizes their entries
// into article records.
package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/caching"
	"github.com/MORS0422/realtime-tech-library/pkg/identify"
	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

const userAgent = "rtlib/1.0 (+https://github.com/MORS0422/realtime-tech-library)"

// untitledPlaceholder stands in for entries that arrive without a title.
const untitledPlaceholder = "无标题"

type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
	cache  *caching.Cache
	logger *slog.Logger
}

// NewFetcher builds a feed fetcher. cache may be nil to always hit the
// network.
func NewFetcher(cache *caching.Cache, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		parser: gofeed.NewParser(),
		cache:  cache,
		logger: logger,
	}
}

// FetchSource downloads and normalizes one source. maxArticles caps the
// number of entries taken; the source's own max_articles wins over the
// global setting when set. Entries keep their raw published string; date
// interpretation happens at classification time.
func (f *Fetcher) FetchSource(ctx context.Context, src models.Source, maxArticles int) ([]models.Article, error) {
	if src.MaxArticles > 0 {
		maxArticles = src.MaxArticles
	}
	if maxArticles <= 0 {
		maxArticles = 5
	}

	body, err := f.getBody(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %q: %w", src.Name, err)
	}

	parsed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %q: %w", src.Name, err)
	}

	now := time.Now()
	articles := make([]models.Article, 0, maxArticles)
	for _, item := range parsed.Items {
		if len(articles) >= maxArticles {
			break
		}
		articles = append(articles, f.normalize(item, src, now))
	}

	f.logger.Info("fetched source", "source", src.Name, "articles", len(articles))
	return articles, nil
}

// normalize flattens one feed item into an article record. A missing
// link still produces a valid (if shared) identifier; deduplication
// downstream collapses those.
func (f *Fetcher) normalize(item *gofeed.Item, src models.Source, now time.Time) models.Article {
	title := item.Title
	if title == "" {
		title = untitledPlaceholder
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	published := item.Published
	if published == "" {
		published = item.Updated
	}
	if published == "" {
		published = now.Format("2006-01-02")
	}

	return models.Article{
		ID:         identify.ArticleID(item.Link),
		Title:      title,
		Link:       item.Link,
		Summary:    textutil.CleanHTML(summary),
		Published:  published,
		SourceName: src.Name,
		Category:   src.Category,
		FetchedAt:  now.Format(time.RFC3339),
	}
}

func (f *Fetcher) getBody(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(url); ok {
			f.logger.Debug("feed cache hit", "url", url)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch feed, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		if err := f.cache.Set(url, body); err != nil {
			f.logger.Warn("failed to cache feed body", "url", url, "error", err)
		}
	}
	return body, nil
}
