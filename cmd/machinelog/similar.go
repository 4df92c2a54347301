// ABOUTME: Similar command for finding past interventions by lexical similarity.
// ABOUTME: Ranks stored problem descriptions against a free-text query.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/similarity"
	"github.com/harper/machinelog/internal/ui"
)

var similarCmd = &cobra.Command{
	Use:   "similar <problem description>",
	Short: "Find similar past interventions",
	Long:  `Describe a problem in free text and rank past interventions by similarity to surface likely-relevant fixes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config supplies the defaults; explicit flags win.
		threshold := cfg.Similarity.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold, _ = cmd.Flags().GetFloat64("threshold")
		}
		topK := cfg.Similarity.TopK
		if cmd.Flags().Changed("top") {
			topK, _ = cmd.Flags().GetInt("top")
		}

		interventions, err := db.AllInterventions(dbConn)
		if err != nil {
			return fmt.Errorf("failed to load interventions: %w", err)
		}

		ranker := similarity.NewRanker(threshold, topK)
		matches, err := ranker.Rank(args[0], interventions)
		switch {
		case errors.Is(err, similarity.ErrNoData):
			fmt.Println("No interventions recorded yet. Add some with 'machinelog add' first.")
			return nil
		case errors.Is(err, similarity.ErrNoMatches):
			fmt.Println("Nothing similar found.")
			fmt.Println("Try describing the problem differently, use more generic wording,")
			fmt.Println("or lower the threshold with --threshold.")
			return nil
		case err != nil:
			return err
		}

		fmt.Printf("Found %d similar interventions:\n\n", len(matches))
		for i, m := range matches {
			fmt.Print(ui.FormatMatch(i+1, m))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	similarCmd.Flags().Float64("threshold", similarity.DefaultThreshold, "minimum similarity score, exclusive")
	similarCmd.Flags().Int("top", similarity.DefaultTopK, "maximum number of results")
	rootCmd.AddCommand(similarCmd)
}
