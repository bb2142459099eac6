package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MORS0422/realtime-tech-library/models"
)

func TestLoadArticlesMissingFile(t *testing.T) {
	articles, err := LoadArticles(filepath.Join(t.TempDir(), "articles.json"))
	if err != nil {
		t.Fatalf("LoadArticles() on missing file error = %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("LoadArticles() on missing file = %d entries, want empty", len(articles))
	}
}

func TestSaveAndLoadArticles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "articles.json")
	in := map[string]models.Article{
		"a1b2c3d4e5f6": {
			ID:         "a1b2c3d4e5f6",
			Title:      "Nanite Deep Dive",
			Link:       "https://example.org/nanite?a=1&b=2",
			Summary:    "虚拟化几何体 <管线> 介绍",
			Published:  "2023-06-14",
			SourceName: "Epic Games",
			Category:   "ue",
			FetchedAt:  "2023-06-15T12:00:00Z",
		},
	}

	if err := SaveArticles(path, in); err != nil {
		t.Fatalf("SaveArticles() error = %v", err)
	}

	out, err := LoadArticles(path)
	if err != nil {
		t.Fatalf("LoadArticles() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("LoadArticles() = %d entries, want 1", len(out))
	}
	if out["a1b2c3d4e5f6"] != in["a1b2c3d4e5f6"] {
		t.Errorf("round trip changed article:\ngot  %+v\nwant %+v", out["a1b2c3d4e5f6"], in["a1b2c3d4e5f6"])
	}
}

func TestSaveArticlesKeepsLiteralText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	in := map[string]models.Article{
		"a1b2c3d4e5f6": {ID: "a1b2c3d4e5f6", Title: "渲染 & <优化>", Link: "https://example.org/?a=1&b=2"},
	}
	if err := SaveArticles(path, in); err != nil {
		t.Fatalf("SaveArticles() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(raw)
	if strings.Contains(text, `\u003c`) || strings.Contains(text, `\u0026`) {
		t.Errorf("cache file escapes markup characters: %s", text)
	}
	if !strings.Contains(text, "渲染 & <优化>") {
		t.Errorf("cache file does not keep literal UTF-8: %s", text)
	}
}

func TestSaveReviewLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review_log.json")
	log := &models.ReviewLog{
		ReviewDate:          "2023-06-15T12:00:00Z",
		TotalArticles:       1,
		QualityDistribution: map[string]int{"优质": 1, "良好": 0, "一般": 0, "需改进": 0},
		Results: []models.ReviewResult{
			{
				ArticleID:    "a1b2c3d4e5f6",
				Title:        "Nanite Deep Dive",
				QualityScore: 45,
				QualityLevel: "优质",
				LinkValid:    true,
				ReviewedAt:   "2023-06-15T12:00:00Z",
			},
		},
	}

	if err := SaveReviewLog(path, log); err != nil {
		t.Fatalf("SaveReviewLog() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, frag := range []string{`"review_date"`, `"quality_distribution"`, `"优质"`, `"quality_score": 45`} {
		if !strings.Contains(string(raw), frag) {
			t.Errorf("review log missing %q", frag)
		}
	}
}
