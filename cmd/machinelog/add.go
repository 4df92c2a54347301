// ABOUTME: Add command for recording a new intervention.
// ABOUTME: Supports attaching files whose kind is inferred from the extension.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/models"
	"github.com/harper/machinelog/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new intervention",
	Long:  `Record a maintenance intervention. Machine, operator, problem, and solution are required; files can be attached with repeated --attach flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, _ := cmd.Flags().GetString("machine")
		operator, _ := cmd.Flags().GetString("operator")
		category, _ := cmd.Flags().GetString("category")
		problem, _ := cmd.Flags().GetString("problem")
		solution, _ := cmd.Flags().GetString("solution")
		attachPaths, _ := cmd.Flags().GetStringArray("attach")

		var attachments []*models.Attachment
		for _, path := range attachPaths {
			data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read attachment: %w", err)
			}
			name := filepath.Base(path)
			attachments = append(attachments, models.NewAttachment(name, models.KindForFilename(name), data))
		}

		iv := models.NewIntervention(machine, operator, models.ParseCategory(category), problem, solution)
		id, err := db.SaveIntervention(dbConn, iv, attachments)
		if err != nil {
			return fmt.Errorf("failed to save intervention: %w", err)
		}
		slog.Debug("intervention saved", "id", id, "attachments", len(attachments))

		if len(attachments) > 0 {
			fmt.Println(ui.Success(fmt.Sprintf("Saved intervention #%d with %d attachments", id, len(attachments))))
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Saved intervention #%d", id)))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("machine", "m", "", "machine name (required)")
	addCmd.Flags().StringP("operator", "o", "", "operator name (required)")
	addCmd.Flags().StringP("category", "c", "", "category: Software, Electrical, Pneumatic, Mechanical, Maintenance, Other")
	addCmd.Flags().StringP("problem", "p", "", "problem description (required)")
	addCmd.Flags().StringP("solution", "s", "", "solution description (required)")
	addCmd.Flags().StringArray("attach", nil, "file to attach (repeatable)")
	rootCmd.AddCommand(addCmd)
}
