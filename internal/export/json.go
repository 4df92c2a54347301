// ABOUTME: JSON export of interventions with embedded attachments.
// ABOUTME: Payloads are base64 encoded; unreadable attachments are reported per item.

package export

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/harper/machinelog/internal/db"
)

type JSONAttachment struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	Kind     string `json:"kind"`
	Data     string `json:"data,omitempty"` // base64 encoded
	Error    string `json:"error,omitempty"`
}

type JSONIntervention struct {
	ID          int64            `json:"id"`
	Timestamp   string           `json:"timestamp"`
	Machine     string           `json:"machine"`
	Operator    string           `json:"operator"`
	Category    string           `json:"category"`
	Problem     string           `json:"problem"`
	Solution    string           `json:"solution"`
	Attachments []JSONAttachment `json:"attachments,omitempty"`
}

type Envelope struct {
	ExportID      string             `json:"export_id"`
	ExportedAt    time.Time          `json:"exported_at"`
	Interventions []JSONIntervention `json:"interventions"`
}

// WriteJSON streams every intervention with its attachments to w. A
// failure to read one attachment is recorded on that item and does
// not abort the export.
func WriteJSON(dbConn *sql.DB, w io.Writer) error {
	interventions, err := db.AllInterventions(dbConn)
	if err != nil {
		return err
	}

	env := Envelope{
		ExportID:   uuid.New().String(),
		ExportedAt: time.Now(),
	}
	for _, iv := range interventions {
		ji := JSONIntervention{
			ID:        iv.ID,
			Timestamp: iv.CreatedAt.Format(timestampLayout),
			Machine:   iv.Machine,
			Operator:  iv.Operator,
			Category:  string(iv.Category),
			Problem:   iv.Problem,
			Solution:  iv.Solution,
		}

		metas, err := db.ListAttachments(dbConn, iv.ID, nil)
		if err != nil {
			return err
		}
		for _, meta := range metas {
			ji.Attachments = append(ji.Attachments, exportAttachment(dbConn, meta))
		}

		env.Interventions = append(env.Interventions, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// exportAttachment reads one payload. If the row vanished between
// listing and reading, the error lands on that item instead of
// aborting the whole export.
func exportAttachment(dbConn *sql.DB, meta *db.AttachmentMeta) JSONAttachment {
	ja := JSONAttachment{
		ID:       meta.ID,
		Filename: meta.Filename,
		Kind:     string(meta.Kind),
	}
	att, err := db.GetAttachment(dbConn, meta.ID)
	if err != nil {
		ja.Error = err.Error()
		return ja
	}
	ja.Data = base64.StdEncoding.EncodeToString(att.Data)
	return ja
}
