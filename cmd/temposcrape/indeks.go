package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"temposcrape/output"
	"temposcrape/scrape"
)

func newIndeksCommand() *cobra.Command {
	var (
		opts       scrape.Options
		singleFile bool
	)

	cmd := &cobra.Command{
		Use:   "indeks",
		Short: "Scrape article index pages",
		Long: `Scrape paginated article index pages into a JSON document or,
with --categorize, a per-category JSON bundle. Date filtering and rubric
filtering are mutually exclusive; the rubric wins when both are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			opts.NormalizeDates()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			articles := a.runner.ScrapeIndex(opts)

			target := output.SingleDocument
			if opts.Categorize && !singleFile {
				target = output.CategorizedBundle
			}

			path, err := a.writer.WriteIndex(articles, opts, target)
			if err != nil {
				return err
			}
			a.log.Info("index scraping completed", zap.String("output", path))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.StartPage, "start-page", 1, "starting page number")
	cmd.Flags().IntVar(&opts.EndPage, "end-page", 3, "ending page number")
	cmd.Flags().IntVar(&opts.Delay, "delay", 1, "delay between page requests in seconds")
	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "start date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&opts.EndDate, "end-date", "", "end date in YYYY-MM-DD format")
	cmd.Flags().IntVar(&opts.ArticlePerPage, "article-per-page", 20, "maximum articles per page")
	cmd.Flags().BoolVar(&opts.ExtractContent, "extract-content", false, "extract full content for each article")
	cmd.Flags().StringVar(&opts.Rubric, "rubric", "", "rubric slug to filter by")
	cmd.Flags().BoolVar(&opts.Categorize, "categorize", false, "group output by article category")
	cmd.Flags().BoolVar(&opts.FromFeed, "rss", false, "discover articles via the rubric RSS feed instead of index pages")
	cmd.Flags().StringVar(&opts.OutputName, "output-name", "", "custom output name (without extension)")
	cmd.Flags().BoolVar(&singleFile, "single-file", false, "with --categorize, write one grouped document instead of a bundle")

	return cmd
}
