// ABOUTME: Tests for the attachment model.
// ABOUTME: Covers kind parsing, abbreviations, and extension inference.

package models

import "testing"

func TestParseKind(t *testing.T) {
	k, err := ParseKind("IMAGE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KindImage {
		t.Errorf("expected %q, got %q", KindImage, k)
	}

	if _, err := ParseKind("spreadsheet"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestKindAbbrev(t *testing.T) {
	cases := map[Kind]string{
		KindImage:    "img",
		KindText:     "txt",
		KindDocument: "doc",
	}
	for k, want := range cases {
		if got := k.Abbrev(); got != want {
			t.Errorf("abbrev for %q: expected %q, got %q", k, want, got)
		}
	}
}

func TestKindForFilename(t *testing.T) {
	cases := map[string]Kind{
		"screenshot_1.png": KindImage,
		"photo.JPG":        KindImage,
		"notes.txt":        KindText,
		"readme.md":        KindText,
		"manual.pdf":       KindDocument,
		"report.docx":      KindDocument,
		"noextension":      KindDocument,
	}
	for name, want := range cases {
		if got := KindForFilename(name); got != want {
			t.Errorf("kind for %q: expected %q, got %q", name, want, got)
		}
	}
}
