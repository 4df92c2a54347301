// ABOUTME: Spreadsheet export of interventions and aggregate statistics.
// ABOUTME: Writes an xlsx workbook with a data sheet and a statistics sheet.

package export

import (
	"database/sql"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/harper/machinelog/internal/db"
)

const (
	dataSheet  = "Interventions"
	statsSheet = "Statistics"
)

var dataHeaders = []string{"ID", "Timestamp", "Machine", "Operator", "Category", "Problem", "Solution", "Attachments"}

// WriteWorkbook exports every intervention plus category and
// top-machine statistics to an xlsx file at path.
func WriteWorkbook(dbConn *sql.DB, path string, topMachines int) error {
	rows, err := CollectRows(dbConn)
	if err != nil {
		return err
	}
	categories, err := db.CategoryCounts(dbConn)
	if err != nil {
		return err
	}
	machines, err := db.TopMachines(dbConn, topMachines)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	for col, h := range dataHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(dataSheet, cell, h); err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
	}
	if err := f.SetCellStyle(dataSheet, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			row.CreatedAt.Format(timestampLayout),
			row.Machine,
			row.Operator,
			string(row.Category),
			row.Problem,
			row.Solution,
			row.Attachments,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return fmt.Errorf("build workbook: %w", err)
			}
		}
	}

	widths := map[string]float64{
		"A": 8, "B": 20, "C": 20, "D": 15, "E": 15, "F": 50, "G": 50, "H": 16,
	}
	for col, w := range widths {
		if err := f.SetColWidth(dataSheet, col, col, w); err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
	}

	if err := writeStatsSheet(f, headerStyle, categories, machines); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

func writeStatsSheet(f *excelize.File, headerStyle int, categories []db.CategoryCount, machines []db.MachineCount) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("build statistics sheet: %w", err)
	}

	set := func(cell string, v any) error {
		if err := f.SetCellValue(statsSheet, cell, v); err != nil {
			return fmt.Errorf("build statistics sheet: %w", err)
		}
		return nil
	}

	if err := set("A1", "Category"); err != nil {
		return err
	}
	if err := set("B1", "Count"); err != nil {
		return err
	}
	if err := f.SetCellStyle(statsSheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("build statistics sheet: %w", err)
	}
	row := 2
	for _, c := range categories {
		if err := set(fmt.Sprintf("A%d", row), string(c.Category)); err != nil {
			return err
		}
		if err := set(fmt.Sprintf("B%d", row), c.Count); err != nil {
			return err
		}
		row++
	}

	row += 2
	machineHeader := row
	if err := set(fmt.Sprintf("A%d", machineHeader), "Machine"); err != nil {
		return err
	}
	if err := set(fmt.Sprintf("B%d", machineHeader), "Interventions"); err != nil {
		return err
	}
	if err := f.SetCellStyle(statsSheet,
		fmt.Sprintf("A%d", machineHeader), fmt.Sprintf("B%d", machineHeader), headerStyle); err != nil {
		return fmt.Errorf("build statistics sheet: %w", err)
	}
	row++
	for _, m := range machines {
		if err := set(fmt.Sprintf("A%d", row), m.Machine); err != nil {
			return err
		}
		if err := set(fmt.Sprintf("B%d", row), m.Count); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(statsSheet, "A", "A", 30); err != nil {
		return fmt.Errorf("build statistics sheet: %w", err)
	}
	if err := f.SetColWidth(statsSheet, "B", "B", 15); err != nil {
		return fmt.Errorf("build statistics sheet: %w", err)
	}
	return nil
}
