// Package article implements the maintenance command for editing
// individual knowledge-base entries in place.
package article

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/kb"
)

// SetAction replaces one entry (or just its body) by id. Unlike the
// pipeline merge this overwrites on purpose: it exists for curated
// corrections, and the insert-only merge keeps them from being undone
// by later runs. The whole artifact is re-read at invocation, so running
// this after a fetch applies the edit on top of that fetch's merge.
func SetAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v := c.String("kb"); v != "" {
		cfg.KBPath = v
	}

	id := c.String("id")
	if id == "" {
		return fmt.Errorf("--id is required")
	}
	entryFile := c.String("entry-file")
	contentFile := c.String("content-file")
	if entryFile == "" && contentFile == "" {
		return fmt.Errorf("one of --entry-file or --content-file is required")
	}

	entries, err := kb.LoadEntries(cfg.KBPath)
	if err != nil {
		return fmt.Errorf("failed to load artifact: %w", err)
	}

	switch {
	case entryFile != "":
		data, err := os.ReadFile(entryFile)
		if err != nil {
			return fmt.Errorf("failed to read entry file: %w", err)
		}
		var entry models.Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("failed to parse entry file: %w", err)
		}
		kb.Set(entries, id, entry)
		logger.Info("entry replaced", "id", id, "title", entry.Title)

	case contentFile != "":
		data, err := os.ReadFile(contentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		if err := kb.SetContent(entries, id, string(data)); err != nil {
			return err
		}
		logger.Info("entry content replaced", "id", id)
	}

	meta := kb.BuildMeta(len(entries), cfg.Version, time.Now())
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

	logger.Info("artifact updated", "total", len(entries))
	return nil
}
