// ABOUTME: List command for displaying recorded interventions.
// ABOUTME: Shows summaries newest first with bounded problem previews.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List interventions",
	Long:  `List all recorded interventions, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := db.ListInterventions(dbConn)
		if err != nil {
			return fmt.Errorf("failed to list interventions: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No interventions recorded.")
			return nil
		}
		for _, s := range summaries {
			fmt.Print(ui.FormatSummary(s))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
