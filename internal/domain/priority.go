package domain

import (
	"fmt"
	"math"
	"time"
)

// EventType classifies an academic event on a student's calendar.
type EventType string

const (
	EventTypeExam       EventType = "exam"
	EventTypeProject    EventType = "project"
	EventTypeAssignment EventType = "assignment"
	EventTypeQuiz       EventType = "quiz"
	EventTypeHomework   EventType = "homework"
)

// EventStatus is the completion status of an academic event.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
)

// UrgencyLevel buckets the time left until an event is due.
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyModerate UrgencyLevel = "moderate"
	UrgencyLow      UrgencyLevel = "low"
)

// CourseLoad buckets how many events are still pending.
type CourseLoad string

const (
	CourseLoadHeavy    CourseLoad = "Heavy"
	CourseLoadModerate CourseLoad = "Moderate"
	CourseLoadLight    CourseLoad = "Light"
)

// AcademicEvent is an assignment, exam or other graded deliverable.
// Weight is the fraction (0..1) of the final course grade it carries.
type AcademicEvent struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	CourseID       string      `json:"courseId"`
	CourseName     string      `json:"courseName,omitempty"`
	Type           EventType   `json:"type"`
	DueDate        time.Time   `json:"dueDate"`
	Weight         float64     `json:"weight"`
	Status         EventStatus `json:"status"`
	EstimatedHours float64     `json:"estimatedHours,omitempty"`
}

// ScoredEvent is an event annotated with its priority score.
type ScoredEvent struct {
	AcademicEvent
	PriorityScore float64 `json:"priorityScore"`
	DaysUntilDue  int     `json:"daysUntilDue"`
}

// PriorityAnalysis summarizes the pending workload around the highest priority event.
type PriorityAnalysis struct {
	Event           *ScoredEvent `json:"event"`
	TotalPending    int          `json:"totalPendingEvents"`
	AverageWeight   float64      `json:"averageWeight"`
	DaysToDue       int          `json:"daysToDue"`
	Urgency         UrgencyLevel `json:"urgencyLevel"`
	ImpactScore     float64      `json:"impactScore"`
	CourseLoad      CourseLoad   `json:"courseLoad"`
	Recommendations []string     `json:"recommendations"`
}

const urgencyHorizonDays = 14

var typeMultipliers = map[EventType]float64{
	EventTypeExam:       1.2,
	EventTypeProject:    1.1,
	EventTypeAssignment: 1.0,
	EventTypeQuiz:       0.9,
	EventTypeHomework:   0.8,
}

// DaysUntil returns whole days from now to due, rounded toward negative infinity.
func DaysUntil(due, now time.Time) int {
	return int(math.Floor(due.Sub(now).Hours() / 24))
}

// PriorityScore weighs an event by grade weight, urgency and type.
// Non-pending events take a flat 50 point penalty.
func PriorityScore(event AcademicEvent, now time.Time) float64 {
	days := DaysUntil(event.DueDate, now)

	weightFactor := event.Weight * 100
	urgencyFactor := float64(max(0, urgencyHorizonDays-days) * 5)

	multiplier, ok := typeMultipliers[event.Type]
	if !ok {
		multiplier = 1.0
	}

	penalty := 0.0
	if event.Status != EventStatusPending {
		penalty = -50
	}

	return roundTo((weightFactor+urgencyFactor)*multiplier+penalty, 2)
}

// UrgencyFor maps days until due to an urgency level.
func UrgencyFor(days int) UrgencyLevel {
	switch {
	case days <= 1:
		return UrgencyCritical
	case days <= 3:
		return UrgencyHigh
	case days <= 7:
		return UrgencyModerate
	default:
		return UrgencyLow
	}
}

// CourseLoadFor maps a pending event count to a course load bucket.
func CourseLoadFor(pending int) CourseLoad {
	switch {
	case pending >= 8:
		return CourseLoadHeavy
	case pending >= 5:
		return CourseLoadModerate
	default:
		return CourseLoadLight
	}
}

// Recommendations produces study advice for the given event.
func Recommendations(event AcademicEvent, totalPending, days int) []string {
	var recs []string

	switch {
	case days <= 1:
		recs = append(recs,
			fmt.Sprintf("URGENT: this %s is due within 24 hours", event.Type),
			"Focus solely on this task and complete it as soon as possible")
	case days <= 3:
		recs = append(recs,
			fmt.Sprintf("Priority: this %s is due very soon", event.Type),
			"Allocate significant time today to work on this")
	case days <= 7:
		recs = append(recs, fmt.Sprintf("Plan ahead: start working on this %s soon", event.Type))
	}

	percent := int(event.Weight * 100)
	switch {
	case event.Weight >= 0.3:
		recs = append(recs,
			fmt.Sprintf("High impact: this task represents %d%% of your grade", percent),
			"Consider dedicating extra study time given its importance")
	case event.Weight >= 0.15:
		recs = append(recs, fmt.Sprintf("Moderate impact: worth %d%% of your final grade", percent))
	}

	if totalPending >= 8 {
		recs = append(recs,
			"Heavy workload detected, prioritize by due date and weight",
			"Break down large tasks into smaller, manageable chunks")
	}

	switch event.Type {
	case EventTypeExam:
		recs = append(recs,
			"Create a study schedule leading up to the exam",
			"Review past materials and practice problems")
	case EventTypeProject:
		recs = append(recs,
			"Break this project into phases with mini-deadlines",
			"Start with research and planning phases")
	case EventTypeAssignment:
		recs = append(recs, "Begin with an outline or initial draft")
	}

	return recs
}

// IdleRecommendations is returned when nothing is pending.
func IdleRecommendations() []string {
	return []string{
		"Consider planning ahead for upcoming assignments",
		"Review your course syllabi for future deadlines",
		"Use this free time to get ahead on reading or projects",
	}
}

// AnalyzeHighestPriority finds the pending event with the highest priority score.
// Ties keep the earliest event in input order.
func AnalyzeHighestPriority(events []AcademicEvent, now time.Time) PriorityAnalysis {
	pending := make([]ScoredEvent, 0, len(events))
	for _, e := range events {
		if e.Status != EventStatusPending {
			continue
		}
		pending = append(pending, ScoredEvent{
			AcademicEvent: e,
			PriorityScore: PriorityScore(e, now),
			DaysUntilDue:  DaysUntil(e.DueDate, now),
		})
	}

	if len(pending) == 0 {
		return PriorityAnalysis{
			Urgency:         UrgencyLow,
			CourseLoad:      CourseLoadLight,
			Recommendations: IdleRecommendations(),
		}
	}

	best := 0
	var totalWeight float64
	for i, e := range pending {
		totalWeight += e.Weight
		if e.PriorityScore > pending[best].PriorityScore {
			best = i
		}
	}
	top := pending[best]

	return PriorityAnalysis{
		Event:           &top,
		TotalPending:    len(pending),
		AverageWeight:   roundTo(totalWeight/float64(len(pending)), 3),
		DaysToDue:       top.DaysUntilDue,
		Urgency:         UrgencyFor(top.DaysUntilDue),
		ImpactScore:     top.PriorityScore,
		CourseLoad:      CourseLoadFor(len(pending)),
		Recommendations: Recommendations(top.AcademicEvent, len(pending), top.DaysUntilDue),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
