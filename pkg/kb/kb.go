// Package kb owns the knowledge-base artifact: extracting the article
// collection out of knowledge-base.js, merging new entries in, and
// serializing the whole artifact back out. The artifact is the published
// format the static site loads directly, so its shape is a contract.
package kb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/render"
	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

// ErrNoAnchor means the artifact exists but the articles collection
// could not be located. Nothing is rewritten in that case.
var ErrNoAnchor = errors.New("articles anchor not found in artifact")

// ErrUnknownEntry is returned when a maintenance edit targets an id
// that is not in the collection.
var ErrUnknownEntry = errors.New("no entry with that id")

// articlesPattern anchors on the literal layout Serialize emits: the
// articles object sits between "articles:" and ", currentCategory".
// Serialize and this pattern must stay in sync or round-tripping breaks.
var articlesPattern = regexp.MustCompile(`(?s)articles:\s*(\{.*?\}),\s*currentCategory`)

// Extract pulls the article collection out of artifact source.
func Extract(artifact []byte) (map[string]models.Entry, error) {
	m := articlesPattern.FindSubmatch(artifact)
	if m == nil {
		return nil, ErrNoAnchor
	}

	entries := make(map[string]models.Entry)
	if err := json.Unmarshal(m[1], &entries); err != nil {
		return nil, fmt.Errorf("failed to parse articles collection: %w", err)
	}
	return entries, nil
}

// LoadEntries reads the artifact file and extracts its collection. A
// missing file is not an error: it yields an empty collection so a fresh
// site can be bootstrapped.
func LoadEntries(path string) (map[string]models.Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]models.Entry), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return Extract(data)
}

// Merge inserts incoming entries whose ids are absent from the
// collection. Existing ids are never overwritten; curated fixes applied
// by maintenance edits survive every future merge. Returns the inserted
// ids.
func Merge(entries map[string]models.Entry, incoming map[string]models.Entry) []string {
	var added []string
	for id, e := range incoming {
		if _, ok := entries[id]; ok {
			continue
		}
		entries[id] = e
		added = append(added, id)
	}
	return added
}

// Set unconditionally replaces or creates one entry. This is the
// maintenance path and deliberately bypasses the merge rule.
func Set(entries map[string]models.Entry, id string, e models.Entry) {
	entries[id] = e
}

// SetContent replaces only the rendered body of an existing entry.
func SetContent(entries map[string]models.Entry, id, content string) error {
	e, ok := entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	e.Content = content
	entries[id] = e
	return nil
}

// NewEntry builds a knowledge-base entry from an article and its analysis.
func NewEntry(article *models.Article, analysis *models.Analysis) models.Entry {
	date := textutil.Truncate(article.Published, 10)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return models.Entry{
		Title:      analysis.ChineseTitle,
		Category:   article.Category,
		Tags:       analysis.KeyTechnologies,
		Date:       date,
		Author:     article.SourceName + " / 自动摘要",
		ReadTime:   "5分钟",
		Difficulty: analysis.Difficulty,
		Content:    render.Content(article, analysis),
	}
}

// BuildMeta produces the artifact header for the current collection.
func BuildMeta(total int, version string, now time.Time) models.Meta {
	return models.Meta{
		LastUpdated:   now.Format("2006-01-02 15:04:05"),
		TotalArticles: total,
		AutoGenerated: true,
		Version:       version,
	}
}

// marshal is JSON marshaling without HTML escaping: entry content is
// HTML and must survive a serialize/extract round trip byte for byte.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Serialize emits the complete artifact: data (meta + articles) followed
// by the fixed page behavior block. The output always re-satisfies
// Extract, which is what makes repeated runs idempotent.
func Serialize(meta models.Meta, entries map[string]models.Entry) ([]byte, error) {
	metaJSON, err := marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize meta: %w", err)
	}
	articlesJSON, err := marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize articles: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("// Realtime Tech Knowledge Base - Enhanced Auto Generated\n")
	buf.WriteString("const knowledgeBase = {\n")
	fmt.Fprintf(&buf, "    meta: %s,\n", metaJSON)
	fmt.Fprintf(&buf, "    articles: %s,\n", articlesJSON)
	buf.WriteString("    currentCategory: 'home',\n")
	buf.WriteString(accessorBlock)
	buf.WriteString("};\n")
	buf.WriteString(behaviorBlock)
	return buf.Bytes(), nil
}

// Snapshot is the pure-data companion artifact written next to the JS
// file, for consumers that want the collection without anchor parsing.
type Snapshot struct {
	Meta     models.Meta             `json:"meta"`
	Articles map[string]models.Entry `json:"articles"`
}

// SerializeSnapshot renders the JSON companion artifact.
func SerializeSnapshot(meta models.Meta, entries map[string]models.Entry) ([]byte, error) {
	data, err := marshal(Snapshot{Meta: meta, Articles: entries})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
