package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/aceup/internal/app/models/dto"
	"github.com/yigit/aceup/internal/pkg/apperrors"
	"github.com/yigit/aceup/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, HandleValidationError(err)
	// Storage failures may wrap item errors from a corrupt record; they are still retryable.
	case errors.Is(err, apperrors.ErrStorage):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable,
			"Grade storage is unavailable, please retry").WithSeverity(dto.ErrorSeverityWarning)
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))
	case apperrors.Is(err, apperrors.ErrGradeItemNotFound, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrInvalidGradeItem):
		return http.StatusUnprocessableEntity, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, messageOr(err, "Invalid grade item"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, messageOr(err, "Conflict"))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeRequestCancelled, "Request cancelled before completion")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr returns the message of a CustomError, or fallback for bare sentinels.
func messageOr(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
