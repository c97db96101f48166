package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/aceup/internal/domain"
)

// Services defined in this package:
// - GradeService: per-course grade book operations over a GradeStore
// - AnalyticsService: priority ranking of academic events

// Services holds all the service instances
type Services struct {
	GradeService     GradeService
	AnalyticsService *AnalyticsService
}

// NewServices initializes all services
func NewServices(store domain.GradeStore, lgr zerolog.Logger) *Services {
	return &Services{
		GradeService:     NewGradeService(store, lgr.With().Str("service", "grades").Logger()),
		AnalyticsService: NewAnalyticsService(lgr.With().Str("service", "analytics").Logger()),
	}
}
