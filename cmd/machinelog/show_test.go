// ABOUTME: Tests for attachment extraction from the show command.
// ABOUTME: Covers failure isolation when one attachment cannot be saved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/models"
)

func TestSaveAttachmentsIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	var err error
	dbConn, err = db.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer dbConn.Close()

	iv := models.NewIntervention("press 3", "rossi", models.CategoryMechanical, "belt slipping", "tightened belt")
	id, err := db.SaveIntervention(dbConn, iv, []*models.Attachment{
		models.NewAttachment("before.png", models.KindImage, []byte{0x89, 0x50}),
		models.NewAttachment("notes.txt", models.KindText, []byte("retension after 100h")),
	})
	if err != nil {
		t.Fatalf("failed to save intervention: %v", err)
	}

	metas, err := db.ListAttachments(dbConn, id, nil)
	if err != nil {
		t.Fatalf("failed to list attachments: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(metas))
	}

	// A row deleted by someone else between listing and reading.
	stale := &db.AttachmentMeta{ID: 9999, InterventionID: id, Filename: "gone.png", Kind: models.KindImage}
	metas = append([]*db.AttachmentMeta{stale}, metas...)

	outDir := filepath.Join(dir, "out")
	if err := saveAttachments(metas, outDir); err != nil {
		t.Fatalf("saveAttachments returned error: %v", err)
	}

	for _, name := range []string{"before.png", "notes.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to be saved: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "gone.png")); !os.IsNotExist(err) {
		t.Errorf("expected gone.png to be skipped, stat err: %v", err)
	}
}
