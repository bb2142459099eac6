// Package review implements the audit command.
package review

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/db"
	"github.com/MORS0422/realtime-tech-library/pkg/review"
	"github.com/MORS0422/realtime-tech-library/pkg/store"
)

// ReviewAction audits the raw article cache and writes the review log.
// The artifact itself is never touched.
func ReviewAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v := c.String("articles"); v != "" {
		cfg.ArticlesPath = v
	}

	articles, err := store.LoadArticles(cfg.ArticlesPath)
	if err != nil {
		return fmt.Errorf("failed to load article cache: %w", err)
	}
	logger.Info("reviewing articles", "count", len(articles))

	log := review.Run(articles, time.Now())

	for _, result := range log.Results {
		if !result.LinkValid {
			logger.Warn("broken link",
				"article", result.ArticleID,
				"title", result.Title,
				"issue", result.LinkIssue,
			)
		}
	}
	for _, level := range review.Levels {
		logger.Info("quality bucket", "level", level, "count", log.QualityDistribution[level])
	}

	if err := store.SaveReviewLog(cfg.ReviewLogPath, log); err != nil {
		return fmt.Errorf("failed to save review log: %w", err)
	}
	logger.Info("review log written", "path", cfg.ReviewLogPath)

	history, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return nil
	}
	defer history.Close()
	if _, err := history.RecordReview(log); err != nil {
		logger.Warn("failed to record review run", "error", err)
	}
	return nil
}
