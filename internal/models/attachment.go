// ABOUTME: Attachment model for binary files owned by an intervention.
// ABOUTME: Stores payloads as blobs tagged with a kind (image, text, document).

package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindText     Kind = "text"
	KindDocument Kind = "document"
)

func Kinds() []Kind {
	return []Kind{KindImage, KindText, KindDocument}
}

// Abbrev returns the short form used in export summaries.
func (k Kind) Abbrev() string {
	switch k {
	case KindImage:
		return "img"
	case KindText:
		return "txt"
	case KindDocument:
		return "doc"
	}
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown attachment kind %q", s)
}

// KindForFilename infers an attachment kind from the file extension.
// Anything that is not a recognized image or text format is treated
// as a document.
func KindForFilename(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return KindImage
	case ".txt", ".md", ".log", ".csv":
		return KindText
	}
	return KindDocument
}

type Attachment struct {
	ID             int64
	InterventionID int64
	Filename       string
	Kind           Kind
	Data           []byte
}

func NewAttachment(filename string, kind Kind, data []byte) *Attachment {
	return &Attachment{
		Filename: filename,
		Kind:     kind,
		Data:     data,
	}
}
