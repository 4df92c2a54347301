// ABOUTME: Shared row assembly for the export formats.
// ABOUTME: Builds per-intervention rows with attachment summary strings.

package export

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Row is one exported intervention. Attachments holds the summary
// string, e.g. "2 img, 1 txt", or "none".
type Row struct {
	ID          int64
	CreatedAt   time.Time
	Machine     string
	Operator    string
	Category    models.Category
	Problem     string
	Solution    string
	Attachments string
}

// AttachmentSummary renders a kind histogram as a comma-joined list
// of "<count> <abbrev>" tokens in kind order, or "none" when empty.
func AttachmentSummary(hist map[models.Kind]int) string {
	var tokens []string
	for _, k := range models.Kinds() {
		if n := hist[k]; n > 0 {
			tokens = append(tokens, fmt.Sprintf("%d %s", n, k.Abbrev()))
		}
	}
	if len(tokens) == 0 {
		return "none"
	}
	return strings.Join(tokens, ", ")
}

// CollectRows loads every intervention with its attachment summary,
// most recent first.
func CollectRows(dbConn *sql.DB) ([]Row, error) {
	interventions, err := db.AllInterventions(dbConn)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(interventions))
	for _, iv := range interventions {
		hist, err := db.AttachmentHistogram(dbConn, iv.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			ID:          iv.ID,
			CreatedAt:   iv.CreatedAt,
			Machine:     iv.Machine,
			Operator:    iv.Operator,
			Category:    iv.Category,
			Problem:     iv.Problem,
			Solution:    iv.Solution,
			Attachments: AttachmentSummary(hist),
		})
	}
	return rows, nil
}
