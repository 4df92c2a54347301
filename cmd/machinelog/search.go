// ABOUTME: Search command for substring filtering of interventions.
// ABOUTME: Matches machine, problem, and solution case-insensitively.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search interventions",
	Long:  `Search interventions by substring across machine, problem, and solution. Without a term, behaves like list.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var term string
		if len(args) == 1 {
			term = args[0]
		}

		summaries, err := db.SearchInterventions(dbConn, term)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for _, s := range summaries {
			fmt.Print(ui.FormatSummary(s))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
