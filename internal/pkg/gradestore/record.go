package gradestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
)

// RecordVersion is the schema version written by this build.
// Records without a version field predate versioning and share the version 1 layout.
const RecordVersion = 1

// Record is the persisted form of one course's grade items.
type Record struct {
	Version   int                `json:"version"`
	CourseID  string             `json:"courseId"`
	Items     []domain.GradeItem `json:"items"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// EncodeRecord serializes items for courseID.
// Items that DecodeRecord would refuse are rejected before anything is written.
func EncodeRecord(courseID string, items []domain.GradeItem, now time.Time) ([]byte, error) {
	if items == nil {
		items = []domain.GradeItem{}
	}
	if err := CheckItems(courseID, items); err != nil {
		return nil, err
	}
	data, err := json.Marshal(Record{
		Version:   RecordVersion,
		CourseID:  courseID,
		Items:     items,
		UpdatedAt: now.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode grade record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses the record persisted under courseID and checks the grade book invariants.
// A record that names a different course is corrupt. Legacy records without a course are accepted.
func DecodeRecord(courseID string, data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptRecord, err)
	}
	if rec.CourseID == "" {
		rec.CourseID = courseID
	}
	if rec.CourseID != courseID {
		return nil, fmt.Errorf("%w: record belongs to course %q", apperrors.ErrCorruptRecord, rec.CourseID)
	}
	if err := CheckRecord(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckRecord validates a record read from a backend that stores its fields separately.
// A nil item list is normalized to an empty one.
func CheckRecord(rec *Record) error {
	if rec.Version > RecordVersion || rec.Version < 0 {
		return fmt.Errorf("%w: %d", apperrors.ErrUnsupportedVersion, rec.Version)
	}
	if rec.Items == nil {
		rec.Items = []domain.GradeItem{}
	}
	if err := CheckItems(rec.CourseID, rec.Items); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCorruptRecord, err)
	}
	return nil
}

// CheckItems rebuilds the grade book, which rejects empty names, duplicate ids and
// non-finite numbers. The returned error matches apperrors.ErrInvalidGradeItem.
func CheckItems(courseID string, items []domain.GradeItem) error {
	_, err := domain.NewGradeBook(courseID, items...)
	return err
}
