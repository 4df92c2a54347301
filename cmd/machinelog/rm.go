// ABOUTME: Remove command for deleting interventions.
// ABOUTME: Cascades to attachments after a confirmation prompt.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an intervention",
	Long:  `Delete an intervention and all its attachments.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid intervention id %q", args[0])
		}
		force, _ := cmd.Flags().GetBool("force")

		iv, hist, err := db.GetIntervention(dbConn, id)
		if errors.Is(err, db.ErrNotFound) {
			fmt.Printf("Intervention #%d not found, nothing to do.\n", id)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get intervention: %w", err)
		}

		if !force {
			attached := 0
			for _, n := range hist {
				attached += n
			}
			fmt.Printf("Delete intervention #%d on %q with %d attachments? [y/N] ", id, iv.Machine, attached)
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := db.DeleteIntervention(dbConn, id); err != nil {
			return fmt.Errorf("failed to delete intervention: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted intervention #%d", id)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
