// ABOUTME: Show command for displaying a single intervention in full.
// ABOUTME: Lists attachments and can extract them to a directory.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an intervention",
	Long:  `Display an intervention's full record with its attachment counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid intervention id %q", args[0])
		}

		iv, hist, err := db.GetIntervention(dbConn, id)
		if errors.Is(err, db.ErrNotFound) {
			fmt.Println(ui.Error(fmt.Sprintf("Intervention #%d not found", id)))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get intervention: %w", err)
		}

		fmt.Print(ui.FormatDetail(iv, hist))

		metas, err := db.ListAttachments(dbConn, id, nil)
		if err != nil {
			return fmt.Errorf("failed to list attachments: %w", err)
		}
		if len(metas) > 0 {
			fmt.Print(ui.FormatAttachmentList(metas))
		}

		if outDir, _ := cmd.Flags().GetString("save-attachments"); outDir != "" && len(metas) > 0 {
			return saveAttachments(metas, outDir)
		}
		return nil
	},
}

// saveAttachments writes each payload to outDir. One unreadable or
// unwritable attachment is reported and does not stop the others.
func saveAttachments(metas []*db.AttachmentMeta, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	saved := 0
	for _, meta := range metas {
		att, err := db.GetAttachment(dbConn, meta.ID)
		if err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("Skipping %s: %v", meta.Filename, err)))
			continue
		}
		path := filepath.Join(outDir, att.Filename)
		if err := os.WriteFile(path, att.Data, 0644); err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("Skipping %s: %v", meta.Filename, err)))
			continue
		}
		saved++
	}

	fmt.Println(ui.Success(fmt.Sprintf("Saved %d of %d attachments to %s", saved, len(metas), outDir)))
	return nil
}

func init() {
	showCmd.Flags().String("save-attachments", "", "write attachments to this directory")
	rootCmd.AddCommand(showCmd)
}
