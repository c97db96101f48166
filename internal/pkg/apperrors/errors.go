package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Grade book errors
var (
	ErrInvalidGradeItem  = errors.New("invalid grade item")
	ErrGradeItemNotFound = errors.New("grade item not found")
	ErrCourseIDRequired  = errors.New("course ID is required")
)

// Storage errors
var (
	// ErrStorage is matched by every *StorageError through errors.Is.
	ErrStorage = errors.New("storage error")
	// ErrCorruptRecord marks a persisted record that could not be decoded.
	ErrCorruptRecord = errors.New("corrupt grade record")
	// ErrUnsupportedVersion marks a persisted record written with an unknown schema version.
	ErrUnsupportedVersion = errors.New("unsupported grade record version")
)

// StorageOp names the store operation that failed.
type StorageOp string

const (
	OpLoad StorageOp = "load"
	OpSave StorageOp = "save"
)

// StorageError reports a failed load or save against durable storage.
// Callers present a degraded state and may retry; it is never fatal.
type StorageError struct {
	Op       StorageOp
	CourseID string
	Err      error
}

// NewStorageError wraps err as a StorageError for the given operation and course.
func NewStorageError(op StorageOp, courseID string, err error) *StorageError {
	return &StorageError{Op: op, CourseID: courseID, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("grade store %s failed for course %q", e.Op, e.CourseID)
	}
	return fmt.Sprintf("grade store %s failed for course %q: %v", e.Op, e.CourseID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewInvalidGradeItemError describes why a grade item was rejected.
func NewInvalidGradeItemError(message string) error {
	return &CustomError{
		Err:     ErrInvalidGradeItem,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
