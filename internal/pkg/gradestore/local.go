package gradestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
	"github.com/yigit/aceup/internal/pkg/logger"
)

const recordExt = ".json"

// FileStore keeps one JSON document per course in a local directory.
type FileStore struct {
	basePath string // The directory holding the course records
	now      func() time.Time
}

var _ domain.GradeStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at basePath, creating the directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create grade storage directory")
		return nil, fmt.Errorf("failed to create grade storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Grade storage directory ensured")

	return &FileStore{
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// recordPath maps an opaque course ID to a file name that is safe on any filesystem.
func (fs *FileStore) recordPath(courseID string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(courseID))
	return filepath.Join(fs.basePath, name+recordExt)
}

// Load reads the saved items for courseID.
func (fs *FileStore) Load(ctx context.Context, courseID string) ([]domain.GradeItem, bool, error) {
	if courseID == "" {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, apperrors.ErrCourseIDRequired)
	}
	if err := ctx.Err(); err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	path := fs.recordPath(courseID)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		logger.Error().Err(err).Str("path", path).Msg("Failed to read grade record")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	rec, err := DecodeRecord(courseID, data)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to decode grade record")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}
	return rec.Items, true, nil
}

// Save replaces the record for courseID. The write goes to a temporary file that is
// renamed into place, so readers never observe a partially written record.
func (fs *FileStore) Save(ctx context.Context, courseID string, items []domain.GradeItem) error {
	if courseID == "" {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, apperrors.ErrCourseIDRequired)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	data, err := EncodeRecord(courseID, items, fs.now())
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	tmpPath := filepath.Join(fs.basePath, uuid.NewString()+".tmp")
	if err := writeFileSync(tmpPath, data); err != nil {
		logger.Error().Err(err).Str("path", tmpPath).Msg("Failed to write grade record")
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	dstPath := fs.recordPath(courseID)
	if err := os.Rename(tmpPath, dstPath); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to replace grade record")
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	logger.Debug().Str("courseId", courseID).Int("items", len(items)).Msg("Grade record saved")
	return nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
