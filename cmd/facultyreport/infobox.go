package main

import (
	"os"

	"faculty-analyze-go/config"
	"faculty-analyze-go/internal/extract"
	"faculty-analyze-go/internal/fetcher"
	"faculty-analyze-go/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoboxCmd)
}

// Warm-up demo: scrape a Wikipedia biography infobox into a Key/Value table.
var infoboxCmd = &cobra.Command{
	Use:   "infobox [url]",
	Short: "Scrape a Wikipedia infobox into a Key/Value table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		pageURL := settings.InfoboxURL
		if len(args) == 1 {
			pageURL = args[0]
		}

		pages := fetcher.NewPageFetcher(settings.RequestTimeout, settings.Headers())
		doc, err := pages.FetchDocument(cmd.Context(), pageURL)
		if err != nil {
			return err
		}

		report.RenderInfobox(os.Stdout, extract.InfoboxRows(doc))
		return nil
	},
}
