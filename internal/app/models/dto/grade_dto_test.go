package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/aceup/internal/domain"
)

func TestNewGradeBookResponse(t *testing.T) {
	book, err := domain.NewGradeBook("cs101",
		domain.NewGradeItem("Midterm", 30, 4.0),
		domain.NewGradeItem("Final", 40, 4.5),
		domain.NewGradeItem("Homework", 20, 5.0),
	)
	require.NoError(t, err)

	resp := NewGradeBookResponse(book, false, false, "")

	assert.Equal(t, "cs101", resp.CourseID)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Midterm", resp.Items[0].Name)
	assert.InDelta(t, 4.444444444444445, resp.CurrentGrade, 1e-9)
	assert.Equal(t, "4.44", resp.CurrentGradeDisplay)
	assert.Equal(t, 90.0, resp.WeightUsed)
	assert.Equal(t, 10.0, resp.WeightRemaining)
	assert.False(t, resp.Overweight)
}

func TestNewGradeBookResponse_Overweight(t *testing.T) {
	book, err := domain.NewGradeBook("cs101",
		domain.NewGradeItem("A", 70, 4),
		domain.NewGradeItem("B", 50, 2),
	)
	require.NoError(t, err)

	resp := NewGradeBookResponse(book, false, true, "pending")

	assert.True(t, resp.Overweight)
	assert.Equal(t, -20.0, resp.WeightRemaining)
	assert.True(t, resp.Unsaved)
	assert.Equal(t, "pending", resp.Warning)
}

func TestNewGradeBookResponse_EmptyBook(t *testing.T) {
	book, err := domain.NewGradeBook("cs101")
	require.NoError(t, err)

	resp := NewGradeBookResponse(book, true, false, "load failed")

	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0.00", resp.CurrentGradeDisplay)
	assert.Equal(t, 100.0, resp.WeightRemaining)
	assert.True(t, resp.Degraded)
}
