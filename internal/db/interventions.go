// ABOUTME: Database operations for interventions.
// ABOUTME: Provides transactional save, cascade delete, listing, and detail lookup.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/machinelog/internal/models"
)

var ErrNotFound = errors.New("intervention not found")

// Summary is the truncated form used by list and search views. The
// problem field holds the bounded preview, never the full text.
type Summary struct {
	ID        int64
	CreatedAt string
	Machine   string
	Operator  string
	Category  models.Category
	Problem   string
}

// SaveIntervention validates the record and persists it together with
// its attachments as one transaction. On success it returns the new
// id and fills in the ids on the passed values.
func SaveIntervention(db *sql.DB, iv *models.Intervention, attachments []*models.Attachment) (int64, error) {
	if err := iv.Validate(); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("save intervention: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO interventions (created_at, machine, operator, category, problem, solution)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		formatTime(iv.CreatedAt), iv.Machine, iv.Operator, string(iv.Category), iv.Problem, iv.Solution,
	)
	if err != nil {
		return 0, fmt.Errorf("save intervention: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save intervention: %w", err)
	}

	for _, att := range attachments {
		if err := insertAttachment(tx, id, att); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save intervention: %w", err)
	}

	iv.ID = id
	for _, att := range attachments {
		att.InterventionID = id
	}
	return id, nil
}

// DeleteIntervention removes the intervention and every attachment it
// owns in one transaction. Deleting an id that does not exist is a
// silent no-op.
func DeleteIntervention(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("delete intervention: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteAttachmentsFor(tx, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM interventions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete intervention: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete intervention: %w", err)
	}
	return nil
}

// ListInterventions returns summaries of all interventions, most
// recent first, ties broken by descending id.
func ListInterventions(db *sql.DB) ([]*Summary, error) {
	rows, err := db.Query(
		`SELECT id, created_at, machine, operator, category, problem
		 FROM interventions
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}
	return scanSummaries(rows)
}

// GetIntervention returns the full record plus a histogram of the
// attachment kinds it currently owns.
func GetIntervention(db *sql.DB, id int64) (*models.Intervention, map[models.Kind]int, error) {
	iv := &models.Intervention{}
	var createdAt, category string
	err := db.QueryRow(
		`SELECT id, created_at, machine, operator, category, problem, solution
		 FROM interventions WHERE id = ?`,
		id,
	).Scan(&iv.ID, &createdAt, &iv.Machine, &iv.Operator, &category, &iv.Problem, &iv.Solution)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get intervention: %w", err)
	}
	iv.Category = models.Category(category)
	if iv.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, nil, err
	}

	hist, err := AttachmentHistogram(db, id)
	if err != nil {
		return nil, nil, err
	}
	return iv, hist, nil
}

// AllInterventions loads every full record, most recent first. Used
// by the similarity ranker and the export layer.
func AllInterventions(db *sql.DB) ([]*models.Intervention, error) {
	rows, err := db.Query(
		`SELECT id, created_at, machine, operator, category, problem, solution
		 FROM interventions
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load interventions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*models.Intervention
	for rows.Next() {
		iv := &models.Intervention{}
		var createdAt, category string
		if err := rows.Scan(&iv.ID, &createdAt, &iv.Machine, &iv.Operator, &category, &iv.Problem, &iv.Solution); err != nil {
			return nil, fmt.Errorf("load interventions: %w", err)
		}
		iv.Category = models.Category(category)
		if iv.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load interventions: %w", err)
	}
	return out, nil
}

func scanSummaries(rows *sql.Rows) ([]*Summary, error) {
	defer func() { _ = rows.Close() }()

	var out []*Summary
	for rows.Next() {
		s := &Summary{}
		var category, problem string
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Machine, &s.Operator, &category, &problem); err != nil {
			return nil, fmt.Errorf("scan intervention: %w", err)
		}
		s.Category = models.Category(category)
		s.Problem = models.PreviewProblem(problem)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan interventions: %w", err)
	}
	return out, nil
}
