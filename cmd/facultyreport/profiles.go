package main

import (
	"os"

	"faculty-analyze-go/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Scrape the faculty profile pages and print the extraction table",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		results := svc.profiles.ScrapeAll(cmd.Context(), svc.roster.Subjects)
		rows := report.ProfileRows(results)

		report.RenderProfiles(os.Stdout, rows)
		report.BarChart(os.Stdout, rows)
		return nil
	},
}
