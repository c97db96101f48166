package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/aceup/internal/app/models/dto"
	"github.com/yigit/aceup/internal/app/services"
	"github.com/yigit/aceup/internal/middleware"
)

// AnalyticsController handles workload analytics endpoints
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// HighestPriority finds the pending event that needs attention first
// @Summary Highest priority event
// @Description Scores pending events by weight, due date and type and returns the top one with recommendations.
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body dto.HighestPriorityRequest true "Academic events"
// @Success 200 {object} dto.APIResponse{data=domain.PriorityAnalysis} "Analysis computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /analytics/highest-priority [post]
func (c *AnalyticsController) HighestPriority(ctx *gin.Context) {
	var req dto.HighestPriorityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	analysis, err := c.analyticsService.AnalyzeEvents(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      analysis,
		Timestamp: time.Now(),
	})
}
