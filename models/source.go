package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// SourceList is the on-disk shape of data/sources.json. The file is an
// external contract shared with other tooling and stays JSON.
type SourceList struct {
	Sources  []Source `json:"sources"`
	Settings Settings `json:"settings"`
}

// Source describes one RSS/Atom feed to ingest.
type Source struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Enabled     bool   `json:"enabled"`
	MaxArticles int    `json:"max_articles"`
}

// Settings holds pipeline-wide ingestion knobs.
type Settings struct {
	ExcludeKeywords        []string `json:"exclude_keywords"`
	MaxArticlesPerSource   int      `json:"max_articles_per_source"`
	MinArticlesPerCategory int      `json:"min_articles_per_category"`
	FetchDaysBack          int      `json:"fetch_days_back"`
}

// LoadSources reads and parses the source list file.
func LoadSources(path string) (*SourceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var list SourceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	return &list, nil
}

// EnabledSources returns the sources that are switched on.
func (l *SourceList) EnabledSources() []Source {
	out := make([]Source, 0, len(l.Sources))
	for _, s := range l.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}
