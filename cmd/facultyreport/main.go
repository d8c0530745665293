// Command facultyreport scrapes faculty profile pages, pulls Google Scholar
// citation metrics and prints tables and charts to the console.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"faculty-analyze-go/config"
	"faculty-analyze-go/internal/fetcher"
	"faculty-analyze-go/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rosterPath string

var rootCmd = &cobra.Command{
	Use:   "facultyreport",
	Short: "Scrape faculty profiles and pull Google Scholar citation metrics",
	RunE:  runReport,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "",
		"path to a YAML roster of subjects (empty uses the built-in PSU faculty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type services struct {
	settings  *config.Settings
	roster    *config.Roster
	pages     *fetcher.PageFetcher
	profiles  *service.ProfileService
	citations *service.CitationService
}

func buildServices() (*services, error) {
	settings := config.Load()
	roster, err := config.LoadRoster(rosterPath)
	if err != nil {
		return nil, err
	}

	pages := fetcher.NewPageFetcher(settings.RequestTimeout, settings.Headers())
	return &services{
		settings:  settings,
		roster:    roster,
		pages:     pages,
		profiles:  service.NewProfileService(pages, roster.Rules),
		citations: service.NewCitationService(fetcher.NewAuthorClient(settings.ScholarBaseURL, pages)),
	}, nil
}
