package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/caching"
	"github.com/MORS0422/realtime-tech-library/pkg/identify"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Test Feed</title>
  <item>
    <title>Nanite Deep Dive</title>
    <link>https://example.org/nanite</link>
    <description>&lt;p&gt;Virtualized &lt;b&gt;geometry&lt;/b&gt; explained.&lt;/p&gt;</description>
    <pubDate>Wed, 14 Jun 2023 09:00:00 +0000</pubDate>
  </item>
  <item>
    <title>Content Only Post</title>
    <link>https://example.org/content-only</link>
    <content:encoded>&lt;p&gt;Body text from content element.&lt;/p&gt;</content:encoded>
  </item>
  <item>
    <title></title>
    <link>https://example.org/untitled</link>
    <description>no title here</description>
  </item>
  <item>
    <title>Overflow Post</title>
    <link>https://example.org/overflow</link>
    <description>beyond the cap</description>
  </item>
</channel>
</rss>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testSource(url string) models.Source {
	return models.Source{
		Name:     "Test Feed",
		URL:      url,
		Category: "ue",
		Enabled:  true,
	}
}

func TestFetchSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher(nil, testLogger())
	articles, err := f.FetchSource(context.Background(), testSource(srv.URL), 3)
	if err != nil {
		t.Fatalf("FetchSource() error = %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("FetchSource() = %d articles, want cap of 3", len(articles))
	}

	first := articles[0]
	if first.ID != identify.ArticleID("https://example.org/nanite") {
		t.Errorf("ID = %q, want hash of the link", first.ID)
	}
	if first.Title != "Nanite Deep Dive" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Summary != "Virtualized geometry explained." {
		t.Errorf("Summary = %q, want cleaned text", first.Summary)
	}
	if first.Published != "Wed, 14 Jun 2023 09:00:00 +0000" {
		t.Errorf("Published = %q, want the raw feed value", first.Published)
	}
	if first.SourceName != "Test Feed" || first.Category != "ue" {
		t.Errorf("source fields = %q/%q", first.SourceName, first.Category)
	}
	if first.FetchedAt == "" {
		t.Error("FetchedAt not set")
	}

	if articles[1].Summary != "Body text from content element." {
		t.Errorf("content fallback summary = %q", articles[1].Summary)
	}
	if articles[2].Title != "无标题" {
		t.Errorf("missing title placeholder = %q", articles[2].Title)
	}
}

func TestFetchSourcePerSourceCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	src := testSource(srv.URL)
	src.MaxArticles = 1

	f := NewFetcher(nil, testLogger())
	articles, err := f.FetchSource(context.Background(), src, 5)
	if err != nil {
		t.Fatalf("FetchSource() error = %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("FetchSource() = %d articles, want per-source cap of 1", len(articles))
	}
}

func TestFetchSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(nil, testLogger())
	if _, err := f.FetchSource(context.Background(), testSource(srv.URL), 5); err == nil {
		t.Fatal("FetchSource() expected error on 500 response")
	}
}

func TestFetchSourceMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, testLogger())
	if _, err := f.FetchSource(context.Background(), testSource(srv.URL), 5); err == nil {
		t.Fatal("FetchSource() expected error on malformed feed")
	}
}

func TestFetchSourceUsesCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	cache, err := caching.New(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("caching.New() error = %v", err)
	}

	f := NewFetcher(cache, testLogger())
	for i := 0; i < 3; i++ {
		if _, err := f.FetchSource(context.Background(), testSource(srv.URL), 3); err != nil {
			t.Fatalf("FetchSource() run %d error = %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cache should serve repeats)", hits)
	}
}
