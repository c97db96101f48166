package dto

import (
	"fmt"

	"github.com/yigit/aceup/internal/domain"
)

// GradeItemRequest is the body for adding or replacing a grade item.
// Weight and Grade are pointers so that an explicit 0 grade passes the required check.
type GradeItemRequest struct {
	Name   string   `json:"name" binding:"required,max=100" example:"Midterm"`
	Weight *float64 `json:"weight" binding:"required,gt=0,lte=100" example:"30"`
	Grade  *float64 `json:"grade" binding:"required,gte=0" example:"4.5"`
}

// GradeItemResponse represents a grade item in API responses
type GradeItemResponse struct {
	ID     string  `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Name   string  `json:"name" example:"Midterm"`
	Weight float64 `json:"weight" example:"30"`
	Grade  float64 `json:"grade" example:"4.5"`
}

// GradeBookResponse is a course's grade items with the computed weighted average
type GradeBookResponse struct {
	CourseID            string              `json:"courseId" example:"cs101"`
	Items               []GradeItemResponse `json:"items"`
	CurrentGrade        float64             `json:"currentGrade" example:"4.444444444444445"`
	CurrentGradeDisplay string              `json:"currentGradeDisplay" example:"4.44"`
	WeightUsed          float64             `json:"weightUsed" example:"90"`
	WeightRemaining     float64             `json:"weightRemaining" example:"10"`
	Overweight          bool                `json:"overweight" example:"false"`
	Degraded            bool                `json:"degraded" example:"false"`
	Unsaved             bool                `json:"unsaved" example:"false"`
	Warning             string              `json:"warning,omitempty"`
}

// FormatGrade renders a computed grade with two decimals.
func FormatGrade(grade float64) string {
	return fmt.Sprintf("%.2f", grade)
}

// NewGradeBookResponse builds the response for book.
func NewGradeBookResponse(book *domain.GradeBook, degraded, unsaved bool, warning string) *GradeBookResponse {
	items := book.Items()
	resp := &GradeBookResponse{
		CourseID: book.CourseID(),
		Items:    make([]GradeItemResponse, 0, len(items)),
		Degraded: degraded,
		Unsaved:  unsaved,
		Warning:  warning,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, GradeItemResponse{
			ID:     item.ID,
			Name:   item.Name,
			Weight: item.Weight,
			Grade:  item.Grade,
		})
	}

	resp.CurrentGrade = book.Compute()
	resp.CurrentGradeDisplay = FormatGrade(resp.CurrentGrade)
	resp.WeightUsed = book.WeightUsed()
	resp.WeightRemaining = 100 - resp.WeightUsed
	resp.Overweight = resp.WeightUsed > 100
	return resp
}
