package analysis

import (
	"strings"
	"testing"

	"github.com/MORS0422/realtime-tech-library/models"
)

func TestGenerateFillsEveryField(t *testing.T) {
	g := NewGenerator()

	for _, cat := range []string{"ue", "ta", "render", "ta-render", "ai", "unknown"} {
		t.Run(cat, func(t *testing.T) {
			a := &models.Article{
				Title:    "Nanite Deep Dive",
				Summary:  "A long look at virtualized geometry.",
				Category: cat,
			}
			got := g.Generate(a)
			if !got.Complete() {
				t.Errorf("Generate() produced incomplete analysis: %+v", got)
			}
		})
	}
}

func TestGenerateUsesSummaryExcerpt(t *testing.T) {
	g := NewGenerator()
	a := &models.Article{
		Title:    "Lumen in practice",
		Summary:  "<p>Global illumination results from production scenes.</p>",
		Category: "ue",
	}
	got := g.Generate(a)

	if !strings.Contains(got.TechnicalSummary, "Global illumination results") {
		t.Errorf("TechnicalSummary missing cleaned excerpt: %q", got.TechnicalSummary)
	}
	if strings.Contains(got.TechnicalSummary, "<p>") {
		t.Errorf("TechnicalSummary still contains markup: %q", got.TechnicalSummary)
	}
}

func TestGenerateEmptySummaryFallsBack(t *testing.T) {
	g := NewGenerator()
	a := &models.Article{Title: "Untitled release notes", Category: "render"}
	got := g.Generate(a)

	if !strings.Contains(got.TechnicalSummary, "涵盖了图形学算法") {
		t.Errorf("empty summary should use the category fallback text, got %q", got.TechnicalSummary)
	}
}

func TestGenerateTruncatesLongSummary(t *testing.T) {
	g := NewGenerator()
	a := &models.Article{
		Title:    "Shader packing",
		Summary:  strings.Repeat("x", 500),
		Category: "ta",
	}
	got := g.Generate(a)

	wantSummary := len([]rune("本文探讨了技术美术领域的实用技巧。")) + summaryExcerptLen
	if n := len([]rune(got.TechnicalSummary)); n != wantSummary {
		t.Errorf("TechnicalSummary length = %d runes, want %d", n, wantSummary)
	}
}

func TestLocalizeTitle(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "vocabulary substituted",
			title: "Unreal Engine Ray Tracing Tutorial",
			want:  "虚幻引擎 光线追踪 教程",
		},
		{
			name:  "product names survive",
			title: "Nanite and Lumen Update",
			want:  "Nanite and Lumen 更新",
		},
		{
			name:  "chinese title passes through",
			title: "虚幻引擎渲染管线全解析：从入门到精通",
			want:  "虚幻引擎渲染管线全解析：从入门到精通",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.LocalizeTitle(tt.title); got != tt.want {
				t.Errorf("LocalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
