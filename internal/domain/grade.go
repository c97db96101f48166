package domain

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/aceup/internal/pkg/apperrors"
)

// GradeItem is one weighted, graded component of a course (e.g. "Midterm", 30%, scored 4.0).
// Weight is a percentage contribution; Grade uses whatever scale the caller picked (0-5, 0-100).
type GradeItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Grade  float64 `json:"grade"`
}

// NewGradeItem creates a grade item with a freshly generated ID.
func NewGradeItem(name string, weight, grade float64) GradeItem {
	return GradeItem{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Weight: weight,
		Grade:  grade,
	}
}

// Validate checks the invariants every stored item must hold.
// The cumulative weight of a book is deliberately not checked here.
func (i GradeItem) Validate() error {
	if i.ID == "" {
		return apperrors.NewInvalidGradeItemError("grade item ID is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return apperrors.NewInvalidGradeItemError("grade item name is required")
	}
	if !isFinite(i.Weight) {
		return apperrors.NewInvalidGradeItemError("grade item weight must be a finite number")
	}
	if !isFinite(i.Grade) {
		return apperrors.NewInvalidGradeItemError("grade item grade must be a finite number")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
