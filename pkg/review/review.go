// Package review is the read-only quality audit: it scores cached
// articles and flags suspicious links without ever touching the artifact.
package review

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MORS0422/realtime-tech-library/models"
)

// qualitySources is the whitelist of outlets whose articles get a flat
// score bonus.
var qualitySources = []string{
	"Unreal Engine 官方博客",
	"Epic Games",
	"NVIDIA",
	"80 Level",
	"Gamasutra",
	"GDC Vault",
	"SIGGRAPH",
	"SideFX Houdini",
	"Realtime VFX",
	"ArtStation Magazine",
	"CG Channel",
}

// qualityKeywords each add to the score when present in title or summary.
var qualityKeywords = []string{
	"SIGGRAPH", "GDC", "UE5", "Unreal Engine 5", "Nanite", "Lumen", "Niagara",
	"Houdini", "Ray Tracing", "Global Illumination", "PBR", "VFX",
}

// engineTitleKeywords add a bonus when they appear in the title itself.
var engineTitleKeywords = []string{"unreal", "ue5", "niagara", "lumen"}

// invalidLinkPatterns mark links that can never resolve for readers.
var invalidLinkPatterns = []string{"example.com", "localhost", "127.0.0.1"}

// Score weights and level thresholds.
const (
	keywordPoints     = 10
	sourcePoints      = 20
	summaryPoints     = 10
	engineTitlePoints = 15

	excellentThreshold = 40
	goodThreshold      = 25
	fairThreshold      = 10
)

// Quality levels, from best to worst.
const (
	LevelExcellent    = "优质"
	LevelGood         = "良好"
	LevelFair         = "一般"
	LevelNeedsImprove = "需改进"
)

// Levels lists every quality level so distributions can be reported
// with all buckets present.
var Levels = []string{LevelExcellent, LevelGood, LevelFair, LevelNeedsImprove}

// ScoreArticle computes the quality score and level for one article.
func ScoreArticle(a *models.Article) (int, string) {
	title := strings.ToLower(a.Title)
	summary := strings.ToLower(a.Summary)

	score := 0
	for _, kw := range qualityKeywords {
		lkw := strings.ToLower(kw)
		if strings.Contains(title, lkw) || strings.Contains(summary, lkw) {
			score += keywordPoints
		}
	}
	if isQualitySource(a.SourceName) {
		score += sourcePoints
	}
	if utf8.RuneCountInString(a.Summary) > 100 {
		score += summaryPoints
	}
	for _, kw := range engineTitleKeywords {
		if strings.Contains(title, kw) {
			score += engineTitlePoints
			break
		}
	}

	return score, levelFor(score)
}

func levelFor(score int) string {
	switch {
	case score >= excellentThreshold:
		return LevelExcellent
	case score >= goodThreshold:
		return LevelGood
	case score >= fairThreshold:
		return LevelFair
	default:
		return LevelNeedsImprove
	}
}

func isQualitySource(name string) bool {
	lname := strings.ToLower(name)
	for _, src := range qualitySources {
		if strings.Contains(lname, strings.ToLower(src)) {
			return true
		}
	}
	return false
}

// CheckLink flags links that are structurally broken or point at hosts
// that can never serve the article. No network request is made; this is
// a static check.
func CheckLink(link string) (bool, string) {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return false, "链接格式不正确"
	}
	for _, pattern := range invalidLinkPatterns {
		if strings.Contains(link, pattern) {
			return false, "包含无效域名: " + pattern
		}
	}
	return true, ""
}

// Run audits the whole cache and assembles the review log. Articles are
// processed in id order so the report is stable between runs over the
// same cache.
func Run(articles map[string]models.Article, now time.Time) *models.ReviewLog {
	ids := make([]string, 0, len(articles))
	for id := range articles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	distribution := make(map[string]int, len(Levels))
	for _, level := range Levels {
		distribution[level] = 0
	}

	results := make([]models.ReviewResult, 0, len(ids))
	for _, id := range ids {
		a := articles[id]
		score, level := ScoreArticle(&a)
		valid, issue := CheckLink(a.Link)

		distribution[level]++
		results = append(results, models.ReviewResult{
			ArticleID:    id,
			Title:        a.Title,
			QualityScore: score,
			QualityLevel: level,
			LinkValid:    valid,
			LinkIssue:    issue,
			ReviewedAt:   now.Format(time.RFC3339),
		})
	}

	return &models.ReviewLog{
		ReviewDate:          now.Format(time.RFC3339),
		TotalArticles:       len(articles),
		QualityDistribution: distribution,
		Results:             results,
	}
}
