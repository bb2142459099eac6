package db

import (
	"fmt"
	"time"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/review"
)

// SourceResult is the per-source outcome of one pipeline run.
type SourceResult struct {
	SourceName string
	Fetched    int
	Error      string
}

// RunSummary is one row of `rtlib history` output.
type RunSummary struct {
	RunID         int64
	Kind          string
	StartedAt     string
	ArticlesAdded int
	TotalArticles int
	LLMUsed       bool
}

// RecordRun stores a pipeline run and its per-source outcomes in one
// transaction.
func (db *DB) RecordRun(kind string, startedAt time.Time, added, total int, llmUsed bool, sources []SourceResult) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO runs (kind, started_at, articles_added, total_articles, llm_used)
		 VALUES (?, ?, ?, ?, ?)`,
		kind, startedAt.Format(time.RFC3339), added, total, llmUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, s := range sources {
		if _, err := tx.Exec(
			`INSERT INTO run_sources (run_id, source_name, fetched, error) VALUES (?, ?, ?, ?)`,
			runID, s.SourceName, s.Fetched, nullable(s.Error),
		); err != nil {
			return 0, fmt.Errorf("failed to insert source result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// RecordReview stores an audit's distribution.
func (db *DB) RecordReview(log *models.ReviewLog) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO review_runs (reviewed_at, total_articles, excellent, good, fair, needs_improve)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		log.ReviewDate,
		log.TotalArticles,
		log.QualityDistribution[review.LevelExcellent],
		log.QualityDistribution[review.LevelGood],
		log.QualityDistribution[review.LevelFair],
		log.QualityDistribution[review.LevelNeedsImprove],
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent pipeline runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT run_id, kind, started_at, articles_added, total_articles, llm_used
		 FROM runs ORDER BY run_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Kind, &r.StartedAt, &r.ArticlesAdded, &r.TotalArticles, &r.LLMUsed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SourceResults returns the per-source rows for one run.
func (db *DB) SourceResults(runID int64) ([]SourceResult, error) {
	rows, err := db.Query(
		`SELECT source_name, fetched, COALESCE(error, '') FROM run_sources WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query source results: %w", err)
	}
	defer rows.Close()

	var out []SourceResult
	for rows.Next() {
		var s SourceResult
		if err := rows.Scan(&s.SourceName, &s.Fetched, &s.Error); err != nil {
			return nil, fmt.Errorf("failed to scan source result: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
