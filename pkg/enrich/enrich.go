// Package enrich fills in summaries for feed entries that arrive
// without one, by fetching the article page and distilling it.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

// ErrNoContent means the page yielded nothing usable as a summary.
var ErrNoContent = errors.New("no usable summary content")

type Enricher struct {
	client *http.Client
	logger *slog.Logger
}

func New(logger *slog.Logger) *Enricher {
	return &Enricher{
		client: &http.Client{Timeout: 20 * time.Second},
		logger: logger,
	}
}

// Summary fetches the article page and extracts a short description:
// the readability excerpt when present, otherwise the first paragraph
// of the distilled content. Callers treat any error as "leave the
// summary empty"; enrichment is strictly best-effort.
func (e *Enricher) Summary(ctx context.Context, link string) (string, error) {
	parsedURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("failed to parse link: %w", err)
	}

	html, err := e.getPage(ctx, link)
	if err != nil {
		return "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to distill page: %w", err)
	}

	if excerpt := textutil.Collapse(article.Excerpt); excerpt != "" {
		return excerpt, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse distilled content: %w", err)
	}
	if text := textutil.Collapse(doc.Find("p").First().Text()); text != "" {
		return text, nil
	}
	return "", ErrNoContent
}

func (e *Enricher) getPage(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}
