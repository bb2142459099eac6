package models

// ReviewResult is the audit outcome for one article.
type ReviewResult struct {
	ArticleID    string `json:"article_id"`
	Title        string `json:"title"`
	QualityScore int    `json:"quality_score"`
	QualityLevel string `json:"quality_level"`
	LinkValid    bool   `json:"link_valid"`
	LinkIssue    string `json:"link_issue,omitempty"`
	ReviewedAt   string `json:"reviewed_at"`
}

// ReviewLog is the full audit report written to data/review_log.json.
type ReviewLog struct {
	ReviewDate          string         `json:"review_date"`
	TotalArticles       int            `json:"total_articles"`
	QualityDistribution map[string]int `json:"quality_distribution"`
	Results             []ReviewResult `json:"results"`
}
