package models

// Entry is one article in the knowledge base artifact. Field order matters:
// it is the order entries are serialized with inside knowledge-base.js.
type Entry struct {
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Date       string   `json:"date"`
	Author     string   `json:"author"`
	ReadTime   string   `json:"readTime"`
	Difficulty string   `json:"difficulty"`
	Content    string   `json:"content"`
}

// Meta is the artifact header block.
type Meta struct {
	LastUpdated   string `json:"lastUpdated"`
	TotalArticles int    `json:"totalArticles"`
	AutoGenerated bool   `json:"autoGenerated"`
	Version       string `json:"version"`
}
