// ABOUTME: Intervention model for logged maintenance events.
// ABOUTME: Provides the category enum, validation, and list previews.

package models

import (
	"fmt"
	"strings"
	"time"
)

// ProblemPreviewLen bounds the problem text shown in list views.
const ProblemPreviewLen = 80

type Category string

const (
	CategorySoftware    Category = "Software"
	CategoryElectrical  Category = "Electrical"
	CategoryPneumatic   Category = "Pneumatic"
	CategoryMechanical  Category = "Mechanical"
	CategoryMaintenance Category = "Maintenance"
	CategoryOther       Category = "Other"
)

// DefaultCategory is used when no category is given.
const DefaultCategory = CategorySoftware

func Categories() []Category {
	return []Category{
		CategorySoftware,
		CategoryElectrical,
		CategoryPneumatic,
		CategoryMechanical,
		CategoryMaintenance,
		CategoryOther,
	}
}

// ParseCategory maps free-form input onto a known category,
// case-insensitively. Empty or unknown input falls back to the default.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return DefaultCategory
}

// ValidationError reports a required field that was empty on save.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

type Intervention struct {
	ID        int64
	CreatedAt time.Time
	Machine   string
	Operator  string
	Category  Category
	Problem   string
	Solution  string
}

func NewIntervention(machine, operator string, category Category, problem, solution string) *Intervention {
	if category == "" {
		category = DefaultCategory
	}
	return &Intervention{
		CreatedAt: time.Now().Truncate(time.Second),
		Machine:   machine,
		Operator:  operator,
		Category:  category,
		Problem:   problem,
		Solution:  solution,
	}
}

// Validate checks the non-empty invariant on machine, operator,
// problem and solution.
func (iv *Intervention) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"machine", iv.Machine},
		{"operator", iv.Operator},
		{"problem", iv.Problem},
		{"solution", iv.Solution},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// ProblemPreview returns the problem text truncated for list views,
// with an ellipsis marker when it was cut.
func (iv *Intervention) ProblemPreview() string {
	return PreviewProblem(iv.Problem)
}

// PreviewProblem truncates problem text to the bounded preview length.
func PreviewProblem(problem string) string {
	runes := []rune(problem)
	if len(runes) <= ProblemPreviewLen {
		return problem
	}
	return string(runes[:ProblemPreviewLen]) + "..."
}
