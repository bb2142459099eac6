// Package store persists the raw article cache (data/articles.json) and
// the review log. Both files are read and rewritten wholesale; the cache
// is small enough that partial updates are not worth the complexity.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MORS0422/realtime-tech-library/models"
)

// LoadArticles reads the raw-article cache. A missing file yields an
// empty cache, which is the bootstrap state.
func LoadArticles(path string) (map[string]models.Article, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]models.Article), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read article cache: %w", err)
	}

	articles := make(map[string]models.Article)
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse article cache: %w", err)
	}
	return articles, nil
}

// SaveArticles rewrites the cache file. Other tooling reads this file,
// so it stays pretty-printed with literal UTF-8 and unescaped markup.
func SaveArticles(path string, articles map[string]models.Article) error {
	return writeJSON(path, articles)
}

// SaveReviewLog writes the audit report.
func SaveReviewLog(path string, log *models.ReviewLog) error {
	return writeJSON(path, log)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
