package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/aceup/internal/domain"
)

// AnalyticsService ranks a student's academic events.
type AnalyticsService struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(lgr zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		logger: lgr,
		now:    time.Now,
	}
}

// AnalyzeEvents returns the highest priority pending event with workload context.
func (s *AnalyticsService) AnalyzeEvents(ctx context.Context, events []domain.AcademicEvent) (*domain.PriorityAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis := domain.AnalyzeHighestPriority(events, s.now())

	evt := s.logger.Debug().Int("events", len(events)).Int("pending", analysis.TotalPending)
	if analysis.Event != nil {
		evt = evt.Str("eventId", analysis.Event.ID).Float64("score", analysis.Event.PriorityScore)
	}
	evt.Msg("Priority analysis computed")

	return &analysis, nil
}
