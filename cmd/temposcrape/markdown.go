package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"temposcrape/output"
)

func newMarkdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "markdown <input-dir> <output-dir>",
		Short: "Convert a categorized JSON bundle to Markdown files",
		Long: `Convert the per-category JSON files of a previous categorized
scraping run into one Markdown file per article, organized into one
directory per category. metadata.json is skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			total, err := output.ConvertBundle(args[0], args[1], a.log)
			if err != nil {
				return err
			}
			a.log.Info("markdown conversion completed",
				zap.Int("articles", total),
				zap.String("output", args[1]))
			return nil
		},
	}
}
