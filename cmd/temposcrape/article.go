package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newArticleCommand() *cobra.Command {
	var (
		url        string
		outputName string
	)

	cmd := &cobra.Command{
		Use:   "article",
		Short: "Extract content from a single article",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			article := a.runner.ExtractArticle(url)
			if article == nil {
				return fmt.Errorf("failed to extract article content from %s", url)
			}

			path, err := a.writer.WriteArticle(*article, outputName)
			if err != nil {
				return err
			}
			a.log.Info("article extraction completed", zap.String("output", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL of the article to extract")
	cmd.Flags().StringVar(&outputName, "output-name", "", "custom output name (without extension)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
