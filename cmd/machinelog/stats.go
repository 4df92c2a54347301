// ABOUTME: Stats command for aggregate reporting over the intervention log.
// ABOUTME: Shows totals, category breakdown, busiest machines, and a monthly trend.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/ui"
)

const statsTopMachines = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show intervention statistics",
	Long:  `Report totals, per-category counts, the busiest machines, and the monthly trend over the last year.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := db.LoadStats(dbConn)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		if stats.Interventions == 0 {
			fmt.Println("No interventions recorded.")
			return nil
		}

		categories, err := db.CategoryCounts(dbConn)
		if err != nil {
			return fmt.Errorf("failed to load category counts: %w", err)
		}
		machines, err := db.TopMachines(dbConn, statsTopMachines)
		if err != nil {
			return fmt.Errorf("failed to load machine counts: %w", err)
		}
		months, err := db.MonthlyCounts(dbConn)
		if err != nil {
			return fmt.Errorf("failed to load monthly counts: %w", err)
		}

		fmt.Print(ui.FormatStats(stats, categories, machines, months))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
