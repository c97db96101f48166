package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/aceup/internal/app/models/dto"
	"github.com/yigit/aceup/internal/app/services"
	"github.com/yigit/aceup/internal/middleware"
)

// GradeController handles grade book endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

func respondWithBook(ctx *gin.Context, status int, view *services.GradeBookView, message string) {
	ctx.JSON(status, dto.APIResponse{
		Success:   true,
		Message:   message,
		Data:      dto.NewGradeBookResponse(view.Book, view.Degraded, view.Unsaved, view.Warning),
		Timestamp: time.Now(),
	})
}

func bindGradeItem(ctx *gin.Context) (*dto.GradeItemRequest, bool) {
	var req dto.GradeItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return nil, false
	}
	return &req, true
}

// GetGradeBook returns a course's grade items and current grade
// @Summary Get course grade book
// @Description Returns the grade items of a course with the weighted average. When saved grades cannot be read an empty, degraded grade book is returned.
// @Tags grades
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeBookResponse} "Grade book retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{courseId}/grades [get]
func (c *GradeController) GetGradeBook(ctx *gin.Context) {
	view, err := c.gradeService.GetGradeBook(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondWithBook(ctx, http.StatusOK, view, "")
}

// AddGradeItem appends a grade item to a course
// @Summary Add grade item
// @Description Appends a weighted grade item. The cumulative weight of a course is not limited to 100.
// @Tags grades
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.GradeItemRequest true "Grade item"
// @Success 201 {object} dto.APIResponse{data=dto.GradeBookResponse} "Grade item added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Invalid grade item"
// @Failure 503 {object} dto.ErrorResponse "Grade storage unavailable"
// @Router /courses/{courseId}/grades [post]
func (c *GradeController) AddGradeItem(ctx *gin.Context) {
	req, ok := bindGradeItem(ctx)
	if !ok {
		return
	}

	view, err := c.gradeService.AddItem(ctx.Request.Context(), ctx.Param("courseId"), req.Name, *req.Weight, *req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondWithBook(ctx, http.StatusCreated, view, "Grade item added")
}

// ReplaceGradeItem replaces a grade item with new values
// @Summary Replace grade item
// @Description Removes the item and appends the replacement under a new ID.
// @Tags grades
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param itemId path string true "Grade item ID"
// @Param request body dto.GradeItemRequest true "Replacement grade item"
// @Success 200 {object} dto.APIResponse{data=dto.GradeBookResponse} "Grade item replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Grade item not found"
// @Failure 503 {object} dto.ErrorResponse "Grade storage unavailable"
// @Router /courses/{courseId}/grades/{itemId} [put]
func (c *GradeController) ReplaceGradeItem(ctx *gin.Context) {
	req, ok := bindGradeItem(ctx)
	if !ok {
		return
	}

	view, err := c.gradeService.ReplaceItem(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("itemId"),
		req.Name, *req.Weight, *req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondWithBook(ctx, http.StatusOK, view, "Grade item replaced")
}

// RemoveGradeItem deletes a grade item
// @Summary Remove grade item
// @Description Removes a grade item. Removing an unknown item is a no-op.
// @Tags grades
// @Produce json
// @Param courseId path string true "Course ID"
// @Param itemId path string true "Grade item ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeBookResponse} "Grade item removed"
// @Failure 503 {object} dto.ErrorResponse "Grade storage unavailable"
// @Router /courses/{courseId}/grades/{itemId} [delete]
func (c *GradeController) RemoveGradeItem(ctx *gin.Context) {
	view, err := c.gradeService.RemoveItem(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("itemId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondWithBook(ctx, http.StatusOK, view, "Grade item removed")
}

// ClearGradeBook removes every grade item of a course
// @Summary Clear grade book
// @Tags grades
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeBookResponse} "Grade book cleared"
// @Failure 503 {object} dto.ErrorResponse "Grade storage unavailable"
// @Router /courses/{courseId}/grades [delete]
func (c *GradeController) ClearGradeBook(ctx *gin.Context) {
	view, err := c.gradeService.ClearGradeBook(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondWithBook(ctx, http.StatusOK, view, "Grade book cleared")
}
