package main

import (
	"fmt"
	"os"

	"faculty-analyze-go/internal/report"

	"github.com/spf13/cobra"
)

const (
	publicationLimit = 5
	citationHeadRows = 10
)

func init() {
	rootCmd.AddCommand(citationsCmd)
}

var citationsCmd = &cobra.Command{
	Use:   "citations",
	Short: "Pull Google Scholar metrics and print citation tables and chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		results := svc.citations.CollectAll(cmd.Context(), svc.roster.Subjects)

		fmt.Println("------------------------------")
		fmt.Println("Google Scholar Profile Summaries")
		fmt.Println("------------------------------")
		for _, res := range results {
			report.RenderAuthorSummary(os.Stdout, res)
		}

		fmt.Println()
		fmt.Println("------------------------------")
		fmt.Printf("Recent Publications (first %d)\n", publicationLimit)
		fmt.Println("------------------------------")
		for _, res := range results {
			report.RenderPublications(os.Stdout, res, publicationLimit)
		}

		records := report.BuildCitationTable(results)

		fmt.Printf("\nCombined citation data (first %d rows):\n", citationHeadRows)
		report.RenderCitationHead(os.Stdout, records, citationHeadRows)

		if chart := report.LineChart(records); chart != "" {
			fmt.Println()
			fmt.Println(chart)
		}

		fmt.Println("\nMedian citations per year (by faculty):")
		report.RenderMedians(os.Stdout, report.MedianCites(records))
		return nil
	},
}
