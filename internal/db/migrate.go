// ABOUTME: One-time migration of the legacy image-only attachment table.
// ABOUTME: Folds old rows into the generalized attachments table and drops it.

package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// legacyImagesTable is the pre-1.0 table that held image attachments
// before kinds existed.
const legacyImagesTable = "images"

// MigrateLegacyImages copies rows from the legacy image table into
// attachments with kind "image" and drops the old table, all in one
// transaction. It is a no-op when the table does not exist, so it is
// safe to run on every startup.
func MigrateLegacyImages(db *sql.DB) error {
	var name string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
		legacyImagesTable,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("detect legacy image table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate legacy images: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO attachments (intervention_id, filename, kind, data)
		 SELECT intervention_id, filename, 'image', data FROM images
		 ORDER BY id`,
	); err != nil {
		return fmt.Errorf("copy legacy images: %w", err)
	}
	if _, err := tx.Exec(`DROP TABLE images`); err != nil {
		return fmt.Errorf("drop legacy image table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate legacy images: %w", err)
	}
	return nil
}
