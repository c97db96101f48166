package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/aceup/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	gradeController *controllers.GradeController,
	analyticsController *controllers.AnalyticsController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)
	router.GET("/ping", healthController.Ping)

	// API version group
	v1 := router.Group("/api/v1")

	// Grade book routes
	grades := v1.Group("/courses/:courseId/grades")
	{
		grades.GET("", gradeController.GetGradeBook)
		grades.POST("", gradeController.AddGradeItem)
		grades.DELETE("", gradeController.ClearGradeBook)
		grades.PUT("/:itemId", gradeController.ReplaceGradeItem)
		grades.DELETE("/:itemId", gradeController.RemoveGradeItem)
	}

	// Analytics routes
	analytics := v1.Group("/analytics")
	{
		analytics.POST("/highest-priority", analyticsController.HighestPriority)
	}
}
