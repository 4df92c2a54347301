// ABOUTME: Read-only aggregations over the intervention table.
// ABOUTME: Feeds the stats command and the spreadsheet export.

package db

import (
	"database/sql"
	"fmt"

	"github.com/harper/machinelog/internal/models"
)

// monthWindow is how many trailing calendar months the trend covers.
const monthWindow = 12

type CategoryCount struct {
	Category models.Category
	Count    int
}

type MachineCount struct {
	Machine string
	Count   int
}

type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// Stats holds the corpus-wide totals. All fields are zero on an empty
// database.
type Stats struct {
	Interventions     int
	Attachments       int
	AttachmentsByKind map[models.Kind]int
	DistinctMachines  int
}

func LoadStats(db *sql.DB) (*Stats, error) {
	s := &Stats{AttachmentsByKind: make(map[models.Kind]int)}

	if err := db.QueryRow(`SELECT COUNT(*) FROM interventions`).Scan(&s.Interventions); err != nil {
		return nil, fmt.Errorf("count interventions: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(DISTINCT machine) FROM interventions`).Scan(&s.DistinctMachines); err != nil {
		return nil, fmt.Errorf("count machines: %w", err)
	}

	rows, err := db.Query(`SELECT kind, COUNT(*) FROM attachments GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count attachments: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("count attachments: %w", err)
		}
		s.AttachmentsByKind[models.Kind(kind)] = count
		s.Attachments += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count attachments: %w", err)
	}
	return s, nil
}

// CategoryCounts groups interventions by category, most frequent
// first, ties broken by category name.
func CategoryCounts(db *sql.DB) ([]CategoryCount, error) {
	rows, err := db.Query(
		`SELECT category, COUNT(*) AS cnt
		 FROM interventions
		 GROUP BY category
		 ORDER BY cnt DESC, category ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		var category string
		if err := rows.Scan(&category, &c.Count); err != nil {
			return nil, fmt.Errorf("count categories: %w", err)
		}
		c.Category = models.Category(category)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return out, nil
}

// TopMachines returns the n machines with the most interventions,
// count descending, ties broken by machine name ascending.
func TopMachines(db *sql.DB, n int) ([]MachineCount, error) {
	rows, err := db.Query(
		`SELECT machine, COUNT(*) AS cnt
		 FROM interventions
		 GROUP BY machine
		 ORDER BY cnt DESC, machine ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("count machines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []MachineCount
	for rows.Next() {
		var m MachineCount
		if err := rows.Scan(&m.Machine, &m.Count); err != nil {
			return nil, fmt.Errorf("count machines: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count machines: %w", err)
	}
	return out, nil
}

// MonthlyCounts returns intervention counts for the most recent
// twelve calendar months, oldest first for trend rendering. The query
// fetches newest-first and the result is reversed.
func MonthlyCounts(db *sql.DB) ([]MonthCount, error) {
	rows, err := db.Query(
		`SELECT strftime('%Y-%m', created_at) AS month, COUNT(*)
		 FROM interventions
		 GROUP BY month
		 ORDER BY month DESC
		 LIMIT ?`,
		monthWindow,
	)
	if err != nil {
		return nil, fmt.Errorf("count months: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []MonthCount
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("count months: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count months: %w", err)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
