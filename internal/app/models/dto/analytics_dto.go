package dto

import (
	"time"

	"github.com/yigit/aceup/internal/domain"
)

// AcademicEventRequest describes one calendar event submitted for analysis
type AcademicEventRequest struct {
	ID             string    `json:"id" binding:"required" example:"evt-1"`
	Title          string    `json:"title" binding:"required" example:"Midterm Exam"`
	Description    string    `json:"description" example:"Chapters 1-5"`
	CourseID       string    `json:"courseId" example:"cs101"`
	CourseName     string    `json:"courseName" example:"Intro to Programming"`
	Type           string    `json:"type" binding:"required" example:"exam"`
	DueDate        time.Time `json:"dueDate" binding:"required" example:"2025-05-01T09:00:00Z"`
	Weight         *float64  `json:"weight" binding:"required,gte=0,lte=1" example:"0.3"`
	Status         string    `json:"status" binding:"required,oneof=pending completed" example:"pending"`
	EstimatedHours float64   `json:"estimatedHours" binding:"gte=0" example:"6"`
}

// HighestPriorityRequest is the body of the highest-priority analysis endpoint
type HighestPriorityRequest struct {
	Events []AcademicEventRequest `json:"events" binding:"required,dive"`
}

// ToDomain converts the request into domain events.
func (r *HighestPriorityRequest) ToDomain() []domain.AcademicEvent {
	events := make([]domain.AcademicEvent, 0, len(r.Events))
	for _, e := range r.Events {
		events = append(events, domain.AcademicEvent{
			ID:             e.ID,
			Title:          e.Title,
			Description:    e.Description,
			CourseID:       e.CourseID,
			CourseName:     e.CourseName,
			Type:           domain.EventType(e.Type),
			DueDate:        e.DueDate,
			Weight:         *e.Weight,
			Status:         domain.EventStatus(e.Status),
			EstimatedHours: e.EstimatedHours,
		})
	}
	return events
}
