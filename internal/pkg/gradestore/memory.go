package gradestore

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
)

// MemoryStore keeps encoded records in process memory. Records go through the same
// codec as the durable stores so round trips behave identically.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ domain.GradeStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Load returns the saved items for courseID.
func (m *MemoryStore) Load(ctx context.Context, courseID string) ([]domain.GradeItem, bool, error) {
	if courseID == "" {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, apperrors.ErrCourseIDRequired)
	}
	if err := ctx.Err(); err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	m.mu.RLock()
	data, ok := m.records[courseID]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	rec, err := DecodeRecord(courseID, data)
	if err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}
	return rec.Items, true, nil
}

// Save replaces the record for courseID.
func (m *MemoryStore) Save(ctx context.Context, courseID string, items []domain.GradeItem) error {
	if courseID == "" {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, apperrors.ErrCourseIDRequired)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	data, err := EncodeRecord(courseID, items, time.Now())
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	m.mu.Lock()
	m.records[courseID] = data
	m.mu.Unlock()
	return nil
}
