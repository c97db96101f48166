package domain

import "context"

// GradeStore persists the ordered grade items of a course between sessions.
//
// Load reports found == false with a nil error when nothing was ever saved for courseID.
// Save replaces any previously stored sequence. Failures of either call are returned
// as *apperrors.StorageError.
type GradeStore interface {
	Load(ctx context.Context, courseID string) (items []GradeItem, found bool, err error)
	Save(ctx context.Context, courseID string, items []GradeItem) error
}
