// Package history implements the run-history listing command.
package history

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/db"
)

// HistoryAction lists recent pipeline and review runs.
func HistoryAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tKIND\tSTARTED\tADDED\tTOTAL\tLLM")
	for _, r := range runs {
		llmMark := "-"
		if r.LLMUsed {
			llmMark = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			r.RunID, r.Kind, r.StartedAt, r.ArticlesAdded, r.TotalArticles, llmMark)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Bool("sources") {
		for _, r := range runs {
			results, err := database.SourceResults(r.RunID)
			if err != nil {
				return fmt.Errorf("failed to load source results: %w", err)
			}
			if len(results) == 0 {
				continue
			}
			fmt.Printf("\nrun %d sources:\n", r.RunID)
			for _, s := range results {
				if s.Error != "" {
					fmt.Printf("  %s: failed (%s)\n", s.SourceName, s.Error)
				} else {
					fmt.Printf("  %s: %d articles\n", s.SourceName, s.Fetched)
				}
			}
		}
	}
	return nil
}
