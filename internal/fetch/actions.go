// Package fetch implements the pipeline commands: the full ingestion
// run and the artifact rebuild from the raw cache.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/analysis"
	"github.com/MORS0422/realtime-tech-library/pkg/caching"
	"github.com/MORS0422/realtime-tech-library/pkg/classify"
	"github.com/MORS0422/realtime-tech-library/pkg/db"
	"github.com/MORS0422/realtime-tech-library/pkg/enrich"
	"github.com/MORS0422/realtime-tech-library/pkg/feed"
	"github.com/MORS0422/realtime-tech-library/pkg/kb"
	"github.com/MORS0422/realtime-tech-library/pkg/llm"
	"github.com/MORS0422/realtime-tech-library/pkg/store"
)

// Analyzer is the external analysis backend; *llm.Client satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, article *models.Article, categoryName string) (*models.Analysis, error)
}

func newLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig reads the config file and applies path overrides from flags.
func loadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("sources"); v != "" {
		cfg.SourcesPath = v
	}
	if v := c.String("kb"); v != "" {
		cfg.KBPath = v
	}
	if v := c.String("articles"); v != "" {
		cfg.ArticlesPath = v
	}
	return cfg, nil
}

// FetchAction runs the full pipeline: ingest feeds, classify, analyze,
// merge into the artifact, persist the caches and record the run.
func FetchAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))
	now := time.Now()

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	srcList, err := models.LoadSources(cfg.SourcesPath)
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}
	settings := srcList.Settings

	cached, err := store.LoadArticles(cfg.ArticlesPath)
	if err != nil {
		return fmt.Errorf("failed to load article cache: %w", err)
	}
	logger.Info("loaded article cache", "articles", len(cached))

	var feedCache *caching.Cache
	if cfg.CacheDir != "" {
		feedCache, err = caching.New(cfg.CacheDir, cfg.CacheTTLDuration())
		if err != nil {
			logger.Warn("feed cache unavailable, fetching directly", "error", err)
			feedCache = nil
		}
	}
	fetcher := feed.NewFetcher(feedCache, logger)

	var backend Analyzer
	if c.Bool("llm") {
		client, err := llm.New(cfg.LLM)
		if err != nil {
			logger.Warn("external analysis unavailable, using templates", "error", err)
		} else {
			backend = client
		}
	}

	var enricher *enrich.Enricher
	if cfg.EnrichSummaries {
		enricher = enrich.New(logger)
	}

	// Ingest and filter, source by source.
	var picked []models.Article
	var sourceResults []db.SourceResult
	batchSeen := make(map[string]bool)

	for _, src := range srcList.EnabledSources() {
		articles, err := fetcher.FetchSource(c.Context, src, settings.MaxArticlesPerSource)
		if err != nil {
			logger.Error("source failed, skipping", "source", src.Name, "error", err)
			sourceResults = append(sourceResults, db.SourceResult{SourceName: src.Name, Error: err.Error()})
			continue
		}

		kept := 0
		for _, a := range articles {
			if _, dup := cached[a.ID]; dup || batchSeen[a.ID] {
				continue
			}
			batchSeen[a.ID] = true

			category, include := classify.Classify(&a, settings.ExcludeKeywords, classify.DefaultRules)
			if !include {
				logger.Info("excluded by keyword filter", "title", a.Title)
				continue
			}
			a.Category = category

			if a.Summary == "" && enricher != nil {
				if summary, err := enricher.Summary(c.Context, a.Link); err == nil {
					a.Summary = summary
				} else {
					logger.Debug("summary enrichment failed", "link", a.Link, "error", err)
				}
			}

			if c.Bool("recent-only") && settings.FetchDaysBack > 0 &&
				!classify.IsRecent(a.Published, settings.FetchDaysBack, now) {
				// Recorded as seen so later runs skip it, but not merged.
				cached[a.ID] = a
				logger.Info("outside recency window", "title", a.Title, "published", a.Published)
				continue
			}

			picked = append(picked, a)
			kept++
		}
		sourceResults = append(sourceResults, db.SourceResult{SourceName: src.Name, Fetched: kept})
	}

	if c.Bool("balance") {
		before := len(picked)
		picked = classify.Balance(picked, settings.MinArticlesPerCategory)
		if len(picked) != before {
			logger.Info("balanced categories", "before", before, "after", len(picked))
		}
	}

	// Analysis and entry construction.
	generator := analysis.NewGenerator()
	incoming := make(map[string]models.Entry, len(picked))
	for i := range picked {
		a := picked[i]
		entry := kb.NewEntry(&a, analyzeArticle(c.Context, logger, backend, generator, &a))
		incoming[a.ID] = entry
		cached[a.ID] = a
	}

	// Artifact update. An unreadable artifact aborts before anything is
	// written, including the raw cache.
	entries, err := kb.LoadEntries(cfg.KBPath)
	if err != nil {
		logger.Error("artifact rebuild aborted", "path", cfg.KBPath, "error", err)
		return fmt.Errorf("failed to load artifact: %w", err)
	}
	added := kb.Merge(entries, incoming)

	if err := writeArtifacts(cfg, entries, now); err != nil {
		return err
	}
	if err := store.SaveArticles(cfg.ArticlesPath, cached); err != nil {
		return fmt.Errorf("failed to save article cache: %w", err)
	}

	recordRun(logger, cfg, "fetch", now, len(added), len(entries), backend != nil, sourceResults)

	logger.Info("pipeline finished",
		"picked", len(picked),
		"added", len(added),
		"total", len(entries),
	)
	return nil
}

// RebuildAction regenerates the artifact from the raw cache without
// fetching anything. Entries already in the artifact stay untouched.
func RebuildAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))
	now := time.Now()

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cached, err := store.LoadArticles(cfg.ArticlesPath)
	if err != nil {
		return fmt.Errorf("failed to load article cache: %w", err)
	}

	entries, err := kb.LoadEntries(cfg.KBPath)
	if err != nil {
		logger.Error("artifact rebuild aborted", "path", cfg.KBPath, "error", err)
		return fmt.Errorf("failed to load artifact: %w", err)
	}

	generator := analysis.NewGenerator()
	incoming := make(map[string]models.Entry)
	for id, a := range cached {
		if _, ok := entries[id]; ok {
			continue
		}
		incoming[id] = kb.NewEntry(&a, generator.Generate(&a))
	}
	added := kb.Merge(entries, incoming)

	if err := writeArtifacts(cfg, entries, now); err != nil {
		return err
	}

	recordRun(logger, cfg, "rebuild", now, len(added), len(entries), false, nil)

	logger.Info("rebuild finished", "added", len(added), "total", len(entries))
	return nil
}

// analyzeArticle prefers the external backend and falls back to the
// template generator on any failure, so every article gets an analysis.
func analyzeArticle(ctx context.Context, logger *slog.Logger, backend Analyzer, generator *analysis.Generator, a *models.Article) *models.Analysis {
	if backend != nil {
		result, err := backend.Analyze(ctx, a, models.CategoryByKey(a.Category).Name)
		if err == nil {
			return result
		}
		logger.Warn("external analysis failed, using template", "title", a.Title, "error", err)
	}
	return generator.Generate(a)
}

// writeArtifacts serializes and writes the JS artifact and its JSON
// companion snapshot.
func writeArtifacts(cfg *models.Config, entries map[string]models.Entry, now time.Time) error {
	meta := kb.BuildMeta(len(entries), cfg.Version, now)

	artifact, err := kb.Serialize(meta, entries)
	if err != nil {
		return fmt.Errorf("failed to serialize artifact: %w", err)
	}
	if err := os.WriteFile(cfg.KBPath, artifact, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	if cfg.KBDataPath != "" {
		snapshot, err := kb.SerializeSnapshot(meta, entries)
		if err != nil {
			return fmt.Errorf("failed to serialize snapshot: %w", err)
		}
		if err := os.WriteFile(cfg.KBDataPath, snapshot, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	return nil
}

// recordRun persists run history. History is auxiliary: failure is
// logged, never fatal.
func recordRun(logger *slog.Logger, cfg *models.Config, kind string, started time.Time, added, total int, llmUsed bool, sources []db.SourceResult) {
	history, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer history.Close()

	if _, err := history.RecordRun(kind, started, added, total, llmUsed, sources); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
