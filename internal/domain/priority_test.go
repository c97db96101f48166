package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

func eventDueIn(id string, typ EventType, days float64, weight float64) AcademicEvent {
	return AcademicEvent{
		ID:      id,
		Title:   id,
		Type:    typ,
		DueDate: refNow.Add(time.Duration(days * float64(24*time.Hour))),
		Weight:  weight,
		Status:  EventStatusPending,
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 5, DaysUntil(refNow.Add(5*24*time.Hour), refNow))
	assert.Equal(t, 4, DaysUntil(refNow.Add(5*24*time.Hour-time.Second), refNow))
	assert.Equal(t, -1, DaysUntil(refNow.Add(-time.Hour), refNow))
}

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name  string
		event AcademicEvent
		want  float64
	}{
		{
			name:  "exam due in two days",
			event: eventDueIn("e", EventTypeExam, 2, 0.30),
			want:  (30 + 12*5) * 1.2,
		},
		{
			name:  "homework beyond the urgency horizon",
			event: eventDueIn("h", EventTypeHomework, 20, 0.05),
			want:  5 * 0.8,
		},
		{
			name:  "unknown type uses neutral multiplier",
			event: eventDueIn("x", EventType("lab"), 10, 0.10),
			want:  10 + 4*5,
		},
		{
			name: "completed event is penalized",
			event: func() AcademicEvent {
				e := eventDueIn("p", EventTypeProject, 5, 0.25)
				e.Status = EventStatusCompleted
				return e
			}(),
			want: (25+9*5)*1.1 - 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PriorityScore(tt.event, refNow), 0.005)
		})
	}
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyCritical, UrgencyFor(-2))
	assert.Equal(t, UrgencyCritical, UrgencyFor(1))
	assert.Equal(t, UrgencyHigh, UrgencyFor(3))
	assert.Equal(t, UrgencyModerate, UrgencyFor(7))
	assert.Equal(t, UrgencyLow, UrgencyFor(8))
}

func TestCourseLoadFor(t *testing.T) {
	assert.Equal(t, CourseLoadLight, CourseLoadFor(4))
	assert.Equal(t, CourseLoadModerate, CourseLoadFor(5))
	assert.Equal(t, CourseLoadHeavy, CourseLoadFor(8))
}

func TestAnalyzeHighestPriority_NoPending(t *testing.T) {
	done := eventDueIn("done", EventTypeExam, 1, 0.5)
	done.Status = EventStatusCompleted

	got := AnalyzeHighestPriority([]AcademicEvent{done}, refNow)

	assert.Nil(t, got.Event)
	assert.Equal(t, 0, got.TotalPending)
	assert.Equal(t, UrgencyLow, got.Urgency)
	assert.Equal(t, CourseLoadLight, got.CourseLoad)
	assert.Equal(t, IdleRecommendations(), got.Recommendations)
}

func TestAnalyzeHighestPriority_PicksTopEvent(t *testing.T) {
	events := []AcademicEvent{
		eventDueIn("project", EventTypeProject, 5.5, 0.25),
		eventDueIn("midterm", EventTypeExam, 2.5, 0.30),
		eventDueIn("lab", EventTypeAssignment, 1.5, 0.08),
		eventDueIn("hw", EventTypeHomework, 7.5, 0.05),
		eventDueIn("quiz", EventTypeQuiz, 10.5, 0.08),
		eventDueIn("final", EventTypeExam, 12.5, 0.35),
	}

	got := AnalyzeHighestPriority(events, refNow)

	require.NotNil(t, got.Event)
	assert.Equal(t, "midterm", got.Event.ID)
	assert.Equal(t, 6, got.TotalPending)
	assert.Equal(t, 2, got.DaysToDue)
	assert.Equal(t, UrgencyHigh, got.Urgency)
	assert.Equal(t, CourseLoadModerate, got.CourseLoad)
	assert.InDelta(t, 0.185, got.AverageWeight, 1e-9)
	assert.InDelta(t, 108.0, got.ImpactScore, 1e-9)
	assert.Contains(t, got.Recommendations, "Create a study schedule leading up to the exam")
	assert.Contains(t, got.Recommendations, "High impact: this task represents 30% of your grade")
}

func TestAnalyzeHighestPriority_TieKeepsFirst(t *testing.T) {
	events := []AcademicEvent{
		eventDueIn("a", EventTypeQuiz, 3.5, 0.1),
		eventDueIn("b", EventTypeQuiz, 3.5, 0.1),
	}

	got := AnalyzeHighestPriority(events, refNow)

	require.NotNil(t, got.Event)
	assert.Equal(t, "a", got.Event.ID)
}

func TestRecommendations_HeavyWorkload(t *testing.T) {
	recs := Recommendations(eventDueIn("q", EventTypeQuiz, 10, 0.05), 9, 10)

	assert.Equal(t, []string{
		"Heavy workload detected, prioritize by due date and weight",
		"Break down large tasks into smaller, manageable chunks",
	}, recs)
}
