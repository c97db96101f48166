package gradestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
	"github.com/yigit/aceup/internal/pkg/logger"

	_ "modernc.org/sqlite"
)

const sqliteTable = "course_grades"

// SQLiteStore keeps one row per course in a local SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ domain.GradeStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates or opens the SQLite database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{
		db:  db,
		now: time.Now,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	storeLogger := logger.WithField("path", dbPath)
	storeLogger.Info().Msg("SQLite grade store opened")
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS course_grades (
		course_id TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the saved items for courseID.
func (s *SQLiteStore) Load(ctx context.Context, courseID string) ([]domain.GradeItem, bool, error) {
	if courseID == "" {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, apperrors.ErrCourseIDRequired)
	}

	query, args, err := squirrel.Select("record").
		From(sqliteTable).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	var raw string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error executing load grade record query")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	rec, err := DecodeRecord(courseID, []byte(raw))
	if err != nil {
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error decoding grade record")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}
	return rec.Items, true, nil
}

// Save upserts the record for courseID.
func (s *SQLiteStore) Save(ctx context.Context, courseID string, items []domain.GradeItem) error {
	if courseID == "" {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, apperrors.ErrCourseIDRequired)
	}

	now := s.now()
	data, err := EncodeRecord(courseID, items, now)
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	query, args, err := squirrel.Insert(sqliteTable).
		Columns("course_id", "record", "updated_at").
		Values(courseID, string(data), now.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(course_id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error executing save grade record query")
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}
	return nil
}
