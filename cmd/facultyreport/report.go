package main

import "github.com/spf13/cobra"

// runReport is the default root behavior: the full profile scrape followed
// by the citation pull, mirroring the two halves of the workflow.
func runReport(cmd *cobra.Command, args []string) error {
	if err := profilesCmd.RunE(cmd, args); err != nil {
		return err
	}
	return citationsCmd.RunE(cmd, args)
}
