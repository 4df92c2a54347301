// ABOUTME: Export command for dumping the intervention log to a file.
// ABOUTME: Supports an xlsx workbook with statistics and a JSON envelope.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/export"
	"github.com/harper/machinelog/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export interventions to a file",
	Long: `Export the full intervention log.

The xlsx format writes a workbook with a data sheet and a statistics
sheet. The json format writes a single envelope with attachments
inlined as base64; it goes to stdout unless --output is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		switch format {
		case "xlsx":
			if output == "" {
				output = "machinelog_export_" + time.Now().Format("20060102_150405") + ".xlsx"
			}
			if err := export.WriteWorkbook(dbConn, output, cfg.Export.TopMachines); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Println(ui.Success("Exported to " + output))
		case "json":
			if output == "" {
				return export.WriteJSON(dbConn, os.Stdout)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			if err := export.WriteJSON(dbConn, f); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Println(ui.Success("Exported to " + output))
		default:
			return fmt.Errorf("unknown format %q (want xlsx or json)", format)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "xlsx", "export format: xlsx or json")
	exportCmd.Flags().StringP("output", "o", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
