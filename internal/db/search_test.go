// ABOUTME: Tests for substring search.
// ABOUTME: Covers field coverage, case folding, and empty-term behavior.

package db

import (
	"testing"

	"github.com/harper/machinelog/internal/models"
)

func TestSearchMatchesEachField(t *testing.T) {
	db := openTestDB(t)

	iv := models.NewIntervention("Hydraulic Press", "rossi", models.CategoryMechanical,
		"oil leak near the valve", "replaced the gasket")
	if _, err := SaveIntervention(db, iv, nil); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	for _, term := range []string{"hydraulic", "LEAK", "Gasket"} {
		results, err := SearchInterventions(db, term)
		if err != nil {
			t.Fatalf("search %q failed: %v", term, err)
		}
		if len(results) != 1 {
			t.Errorf("search %q: expected 1 result, got %d", term, len(results))
		}
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	db := openTestDB(t)

	iv := models.NewIntervention("press 3", "rossi", models.CategoryOther, "jam", "cleared")
	if _, err := SaveIntervention(db, iv, nil); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	results, err := SearchInterventions(db, "unobtainium")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchEmptyTermListsAll(t *testing.T) {
	db := openTestDB(t)

	for _, machine := range []string{"a", "b", "c"} {
		iv := models.NewIntervention(machine, "op", models.CategoryOther, "p", "s")
		if _, err := SaveIntervention(db, iv, nil); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
	}

	results, err := SearchInterventions(db, "  ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected all 3 interventions, got %d", len(results))
	}
}

func TestSearchDoesNotMatchOperator(t *testing.T) {
	db := openTestDB(t)

	iv := models.NewIntervention("press 3", "bianchi", models.CategoryOther, "jam", "cleared")
	if _, err := SaveIntervention(db, iv, nil); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	results, err := SearchInterventions(db, "bianchi")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("operator field should not be searched, got %d results", len(results))
	}
}
