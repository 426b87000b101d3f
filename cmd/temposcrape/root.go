// Command temposcrape scrapes Tempo.co article indexes and articles into
// JSON or Markdown.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"temposcrape/config"
	"temposcrape/fetch"
	"temposcrape/logging"
	"temposcrape/output"
	"temposcrape/scrape"
)

var rootCmd = &cobra.Command{
	Use:   "temposcrape",
	Short: "Scrape Tempo.co article indexes and articles",
	Long: `temposcrape fetches paginated article listings and individual
articles from Tempo.co, normalizes them into structured records, and writes
them out as JSON documents, categorized JSON bundles, or Markdown files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. The .env file is loaded first so the
// session credential is visible to configuration.
func Execute() error {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newIndeksCommand())
	rootCmd.AddCommand(newArticleCommand())
	rootCmd.AddCommand(newMarkdownCommand())
}

// app bundles the wired collaborators every subcommand needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	runner *scrape.Runner
	writer *output.Writer
}

// newApp loads configuration and wires the logger, fetch client, runner,
// and writer. Each invocation gets a run id in its log fields.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logging.New(cfg.LogLevel).With(zap.String("run_id", uuid.NewString()))

	client := fetch.New(fetch.Config{
		UserAgent:    cfg.UserAgent,
		SessionToken: cfg.SessionToken,
		FeedBaseURL:  cfg.FeedURL,
	}, log)

	return &app{
		cfg:    cfg,
		log:    log,
		runner: scrape.NewRunner(client, client, cfg.BaseURL, client.HasCredential(), log),
		writer: output.NewWriter(cfg.OutputDir, log),
	}, nil
}
