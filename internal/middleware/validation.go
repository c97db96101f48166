package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/aceup/internal/app/models/dto"
)

// RegisterJSONFieldNames makes gin's validator report json field names ("weight")
// instead of Go struct field names ("Weight").
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// HandleValidationError converts a binding error into an ErrorDetail listing each invalid field.
func HandleValidationError(err error) *dto.ErrorDetail {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}

	fieldErrors := dto.NewValidationErrors()
	for _, fe := range validationErrs {
		fieldErrors.AddError(fe.Field(), formatValidationError(fe))
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fieldErrors.Errors[0].Message).
		WithDetails(fieldErrors.Errors)
	if len(fieldErrors.Errors) == 1 {
		detail = detail.WithField(fieldErrors.Errors[0].Field)
	}
	return detail
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
