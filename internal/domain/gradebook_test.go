package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/aceup/internal/pkg/apperrors"
)

const tolerance = 1e-9

func mustBook(t *testing.T, items ...GradeItem) *GradeBook {
	t.Helper()
	book, err := NewGradeBook("cs101", items...)
	require.NoError(t, err)
	return book
}

func TestGradeBook_Empty(t *testing.T) {
	book := mustBook(t)

	assert.Equal(t, 0.0, book.Compute())
	assert.Equal(t, 0.0, book.WeightUsed())
	assert.Equal(t, 0, book.Len())
	assert.Equal(t, "cs101", book.CourseID())
}

func TestGradeBook_Compute(t *testing.T) {
	tests := []struct {
		name       string
		items      []GradeItem
		wantGrade  float64
		wantWeight float64
	}{
		{
			name:       "single item at full weight returns its grade",
			items:      []GradeItem{NewGradeItem("Final", 100, 87.5)},
			wantGrade:  87.5,
			wantWeight: 100,
		},
		{
			name: "weights summing to 100",
			items: []GradeItem{
				NewGradeItem("Midterm", 40, 3.0),
				NewGradeItem("Final", 60, 4.5),
			},
			wantGrade:  3.0*40/100 + 4.5*60/100,
			wantWeight: 100,
		},
		{
			name: "partial weight is renormalized by weight used",
			items: []GradeItem{
				NewGradeItem("Midterm", 30, 4.0),
				NewGradeItem("Final", 40, 4.5),
				NewGradeItem("Homework", 20, 5.0),
			},
			wantGrade:  (1.2 + 1.8 + 1.0) / 90 * 100,
			wantWeight: 90,
		},
		{
			name: "weights over 100 are accepted",
			items: []GradeItem{
				NewGradeItem("Quiz", 80, 50),
				NewGradeItem("Exam", 80, 100),
			},
			wantGrade:  75,
			wantWeight: 160,
		},
		{
			name: "zero total weight returns zero",
			items: []GradeItem{
				NewGradeItem("Attendance", 0, 5),
			},
			wantGrade:  0,
			wantWeight: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := mustBook(t, tt.items...)
			assert.InDelta(t, tt.wantGrade, book.Compute(), tolerance)
			assert.InDelta(t, tt.wantWeight, book.WeightUsed(), tolerance)
		})
	}
}

func TestGradeBook_ConcreteScenario(t *testing.T) {
	book := mustBook(t,
		NewGradeItem("Midterm", 30, 4.0),
		NewGradeItem("Final", 40, 4.5),
		NewGradeItem("Homework", 20, 5.0),
	)

	assert.InDelta(t, 90.0, book.WeightUsed(), tolerance)
	assert.InDelta(t, 4.444444444444445, book.Compute(), 1e-12)
}

func TestGradeBook_AddKeepsOrder(t *testing.T) {
	book := mustBook(t)
	names := []string{"Lab 1", "Lab 2", "Midterm", "Lab 3"}
	for _, n := range names {
		require.NoError(t, book.Add(NewGradeItem(n, 10, 4)))
	}

	items := book.Items()
	require.Len(t, items, len(names))
	for i, n := range names {
		assert.Equal(t, n, items[i].Name)
	}
}

func TestGradeBook_AddRejectsInvalidItems(t *testing.T) {
	existing := NewGradeItem("Midterm", 30, 4)
	book := mustBook(t, existing)

	tests := []struct {
		name string
		item GradeItem
	}{
		{name: "empty name", item: NewGradeItem("   ", 10, 4)},
		{name: "NaN weight", item: NewGradeItem("Quiz", math.NaN(), 4)},
		{name: "infinite grade", item: NewGradeItem("Quiz", 10, math.Inf(1))},
		{name: "missing id", item: GradeItem{Name: "Quiz", Weight: 10, Grade: 4}},
		{name: "duplicate id", item: GradeItem{ID: existing.ID, Name: "Copy", Weight: 10, Grade: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := book.Add(tt.item)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidGradeItem))
			assert.Equal(t, 1, book.Len())
		})
	}
}

func TestGradeBook_Remove(t *testing.T) {
	mid := NewGradeItem("Midterm", 50, 3)
	fin := NewGradeItem("Final", 50, 5)
	book := mustBook(t, mid, fin)

	assert.True(t, book.Remove(mid.ID))
	assert.Equal(t, []GradeItem{fin}, book.Items())
	assert.InDelta(t, 5.0, book.Compute(), tolerance)
}

func TestGradeBook_RemoveAbsentIsNoop(t *testing.T) {
	book := mustBook(t,
		NewGradeItem("Midterm", 30, 4.0),
		NewGradeItem("Final", 40, 4.5),
	)
	before := book.Items()
	grade := book.Compute()

	assert.False(t, book.Remove("does-not-exist"))
	assert.Equal(t, before, book.Items())
	assert.Equal(t, grade, book.Compute())
}

func TestGradeBook_ItemsIsACopy(t *testing.T) {
	book := mustBook(t, NewGradeItem("Midterm", 30, 4.0))

	items := book.Items()
	items[0].Grade = 0

	got, ok := book.Get(items[0].ID)
	require.True(t, ok)
	assert.Equal(t, 4.0, got.Grade)
}

func TestNewGradeBook_RejectsInvalidSeed(t *testing.T) {
	_, err := NewGradeBook("cs101", NewGradeItem("", 10, 4))
	assert.ErrorIs(t, err, apperrors.ErrInvalidGradeItem)
}
