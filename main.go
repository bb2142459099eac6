package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/MORS0422/realtime-tech-library/internal/article"
	"github.com/MORS0422/realtime-tech-library/internal/fetch"
	"github.com/MORS0422/realtime-tech-library/internal/history"
	"github.com/MORS0422/realtime-tech-library/internal/review"
)

func main() {
	app := &cli.App{
		Name:  "rtlib",
		Usage: "content pipeline for the Realtime Tech Library site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "fetch",
				Usage:  "ingest feeds, classify, analyze and merge into the knowledge base",
				Action: fetch.FetchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sources", Usage: "override the sources file path"},
					&cli.StringFlag{Name: "kb", Usage: "override the knowledge-base artifact path"},
					&cli.StringFlag{Name: "articles", Usage: "override the raw article cache path"},
					&cli.BoolFlag{Name: "llm", Usage: "generate analyses with the external backend"},
					&cli.BoolFlag{Name: "recent-only", Value: true, Usage: "drop articles outside the recency window"},
					&cli.BoolFlag{Name: "balance", Value: true, Usage: "balance new articles across categories"},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "regenerate the artifact from the raw article cache without fetching",
				Action: fetch.RebuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kb", Usage: "override the knowledge-base artifact path"},
					&cli.StringFlag{Name: "articles", Usage: "override the raw article cache path"},
				},
			},
			{
				Name:   "review",
				Usage:  "audit cached articles and write the review log",
				Action: review.ReviewAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "articles", Usage: "override the raw article cache path"},
				},
			},
			{
				Name:  "article",
				Usage: "maintenance edits on individual knowledge-base entries",
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "replace an entry or its content by id",
						Action: article.SetAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "id", Required: true, Usage: "12-character article id"},
							&cli.StringFlag{Name: "entry-file", Usage: "JSON file with the full replacement entry"},
							&cli.StringFlag{Name: "content-file", Usage: "HTML file with the replacement body"},
							&cli.StringFlag{Name: "kb", Usage: "override the knowledge-base artifact path"},
						},
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list recorded pipeline and review runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to show"},
					&cli.BoolFlag{Name: "sources", Usage: "show per-source results for each run"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
