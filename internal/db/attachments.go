// ABOUTME: Database operations for attachments.
// ABOUTME: Handles blob storage, ordered listing, and kind histograms.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/machinelog/internal/models"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertAttachment(e execer, interventionID int64, att *models.Attachment) error {
	res, err := e.Exec(
		`INSERT INTO attachments (intervention_id, filename, kind, data)
		 VALUES (?, ?, ?, ?)`,
		interventionID, att.Filename, string(att.Kind), att.Data,
	)
	if err != nil {
		return fmt.Errorf("save attachment %q: %w", att.Filename, err)
	}
	att.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save attachment %q: %w", att.Filename, err)
	}
	return nil
}

func deleteAttachmentsFor(e execer, interventionID int64) error {
	if _, err := e.Exec(`DELETE FROM attachments WHERE intervention_id = ?`, interventionID); err != nil {
		return fmt.Errorf("delete attachments: %w", err)
	}
	return nil
}

// AttachmentMeta describes an attachment without its payload.
type AttachmentMeta struct {
	ID             int64
	InterventionID int64
	Filename       string
	Kind           models.Kind
}

// ListAttachments returns attachment metadata for one intervention in
// insertion order, optionally filtered by kind.
func ListAttachments(db *sql.DB, interventionID int64, kind *models.Kind) ([]*AttachmentMeta, error) {
	query := `SELECT id, intervention_id, filename, kind
	          FROM attachments WHERE intervention_id = ?`
	args := []any{interventionID}
	if kind != nil {
		query += ` AND kind = ?`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*AttachmentMeta
	for rows.Next() {
		m := &AttachmentMeta{}
		var k string
		if err := rows.Scan(&m.ID, &m.InterventionID, &m.Filename, &k); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		m.Kind = models.Kind(k)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return out, nil
}

// GetAttachment loads one attachment including its payload.
func GetAttachment(db *sql.DB, id int64) (*models.Attachment, error) {
	att := &models.Attachment{}
	var kind string
	err := db.QueryRow(
		`SELECT id, intervention_id, filename, kind, data
		 FROM attachments WHERE id = ?`,
		id,
	).Scan(&att.ID, &att.InterventionID, &att.Filename, &kind, &att.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	att.Kind = models.Kind(kind)
	return att, nil
}

// AttachmentHistogram counts an intervention's attachments per kind.
// Kinds with no attachments are absent from the map.
func AttachmentHistogram(db *sql.DB, interventionID int64) (map[models.Kind]int, error) {
	rows, err := db.Query(
		`SELECT kind, COUNT(*) FROM attachments WHERE intervention_id = ? GROUP BY kind`,
		interventionID,
	)
	if err != nil {
		return nil, fmt.Errorf("count attachments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	hist := make(map[models.Kind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("count attachments: %w", err)
		}
		hist[models.Kind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count attachments: %w", err)
	}
	return hist, nil
}
