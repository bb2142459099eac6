package models

// Article is a normalized feed entry. The JSON tags match the layout of
// data/articles.json, which older tooling also reads.
type Article struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Summary    string `json:"summary"`
	Published  string `json:"published"`
	SourceName string `json:"source_name"`
	Category   string `json:"category"`
	FetchedAt  string `json:"fetched_at"`
}

// Analysis is the six-field record produced for every ingested article,
// either from the category templates or from the external backend.
type Analysis struct {
	ChineseTitle      string   `json:"chinese_title"`
	TechnicalSummary  string   `json:"technical_summary"`
	KeyTechnologies   []string `json:"key_technologies"`
	TechnicalAnalysis string   `json:"technical_analysis"`
	TargetAudience    string   `json:"target_audience"`
	Difficulty        string   `json:"difficulty"`

	PracticalValue string `json:"practical_value,omitempty"`
}

// Complete reports whether every required field is populated.
func (a *Analysis) Complete() bool {
	return a.ChineseTitle != "" &&
		a.TechnicalSummary != "" &&
		len(a.KeyTechnologies) > 0 &&
		a.TechnicalAnalysis != "" &&
		a.TargetAudience != "" &&
		a.Difficulty != ""
}
