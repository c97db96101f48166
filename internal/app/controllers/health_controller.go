package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/aceup/internal/app/models/dto"
)

// HealthController reports liveness
type HealthController struct {
	storageDriver string
	startedAt     time.Time
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	StorageDriver string `json:"storageDriver" example:"file"`
	Uptime        string `json:"uptime" example:"1h2m3s"`
}

// NewHealthController creates a new HealthController
func NewHealthController(storageDriver string) *HealthController {
	return &HealthController{
		storageDriver: storageDriver,
		startedAt:     time.Now(),
	}
}

// Health reports that the service is up
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse{data=controllers.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:        "ok",
		StorageDriver: c.storageDriver,
		Uptime:        time.Since(c.startedAt).Round(time.Second).String(),
	}, ""))
}

// Ping answers with pong
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "pong"})
}
