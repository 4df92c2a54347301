// ABOUTME: Substring search over interventions.
// ABOUTME: Case-insensitive match against machine, problem, and solution.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// SearchInterventions returns summaries whose machine, problem, or
// solution contains the term, case-insensitively. An empty term is
// equivalent to ListInterventions; no match yields an empty result.
func SearchInterventions(db *sql.DB, term string) ([]*Summary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ListInterventions(db)
	}

	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := db.Query(
		`SELECT id, created_at, machine, operator, category, problem
		 FROM interventions
		 WHERE LOWER(machine) LIKE ? OR LOWER(problem) LIKE ? OR LOWER(solution) LIKE ?
		 ORDER BY created_at DESC, id DESC`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search interventions: %w", err)
	}
	return scanSummaries(rows)
}
