// Package classify assigns articles to site categories using an ordered
// keyword rule table and filters them by exclusion list and recency.
package classify

import (
	"strings"

	"github.com/MORS0422/realtime-tech-library/models"
)

// Rule reassigns an article to Category when one of its keywords appears
// in the title or summary. Categories listed in Keep already satisfy the
// rule and are left untouched.
type Rule struct {
	Category string
	Keywords []string
	Keep     []string
}

// DefaultRules is evaluated in order; a later rule overrides an earlier
// one, so an article matching both the engine and the rendering tier ends
// up in the rendering category.
var DefaultRules = []Rule{
	{
		Category: "ue",
		Keywords: []string{"unreal", "ue5", "ue4", "niagara", "lumen", "nanite", "epic games"},
		Keep:     []string{"ue"},
	},
	{
		// "ai " keeps its trailing space: bare "ai" matches too much
		// ("maintain", "said", ...).
		Category: "ai",
		Keywords: []string{"ai ", "artificial intelligence", "machine learning", "neural", "deep learning", "generative", "gpt", "llm"},
		Keep:     []string{"ai"},
	},
	{
		Category: "render",
		Keywords: []string{"rendering", "ray tracing", "global illumination", "pbr", "shader", "graphics"},
		Keep:     []string{"render", "ta-render"},
	},
}

// Classify runs the exclusion filter and the rule table over an article.
// It returns the final category and whether the article survives at all.
// Exclusion wins over everything: an excluded article is dropped even if
// a later rule would have matched it.
func Classify(a *models.Article, exclude []string, rules []Rule) (string, bool) {
	title := strings.ToLower(a.Title)
	summary := strings.ToLower(a.Summary)

	for _, kw := range exclude {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(title, kw) || strings.Contains(summary, kw) {
			return "", false
		}
	}

	category := a.Category
	for _, rule := range rules {
		if containsAny(title, summary, rule.Keywords) && !keeps(rule, category) {
			category = rule.Category
		}
	}
	return category, true
}

func containsAny(title, summary string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) || strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}

func keeps(rule Rule, category string) bool {
	for _, k := range rule.Keep {
		if k == category {
			return true
		}
	}
	return false
}
