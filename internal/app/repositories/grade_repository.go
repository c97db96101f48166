package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
	"github.com/yigit/aceup/internal/pkg/gradestore"
	"github.com/yigit/aceup/internal/pkg/logger"
)

const gradesTable = "course_grades"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// GradeRepository handles database operations for course grade books
type GradeRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

var _ domain.GradeStore = (*GradeRepository)(nil)

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db:  db,
		now: time.Now,
	}
}

func buildLoadGradesQuery(courseID string) (string, []interface{}, error) {
	return psql.Select("version", "items").
		From(gradesTable).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
}

func buildSaveGradesQuery(courseID string, items []byte, updatedAt time.Time) (string, []interface{}, error) {
	return psql.Insert(gradesTable).
		Columns("course_id", "version", "items", "updated_at").
		Values(courseID, gradestore.RecordVersion, items, updatedAt).
		Suffix("ON CONFLICT (course_id) DO UPDATE SET version = EXCLUDED.version, items = EXCLUDED.items, updated_at = EXCLUDED.updated_at").
		ToSql()
}

// Load retrieves the grade items saved for a course
func (r *GradeRepository) Load(ctx context.Context, courseID string) ([]domain.GradeItem, bool, error) {
	if courseID == "" {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, apperrors.ErrCourseIDRequired)
	}

	query, args, err := buildLoadGradesQuery(courseID)
	if err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, fmt.Errorf("error building load query: %w", err))
	}

	var (
		version int
		raw     []byte
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&version, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error executing load grades query")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	rec := gradestore.Record{Version: version, CourseID: courseID}
	if err := json.Unmarshal(raw, &rec.Items); err != nil {
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID,
			fmt.Errorf("%w: %v", apperrors.ErrCorruptRecord, err))
	}
	if err := gradestore.CheckRecord(&rec); err != nil {
		logger.Error().Err(err).Str("courseId", courseID).Msg("Invalid grade record in database")
		return nil, false, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}

	return rec.Items, true, nil
}

// Save replaces the grade items stored for a course
func (r *GradeRepository) Save(ctx context.Context, courseID string, items []domain.GradeItem) error {
	if courseID == "" {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, apperrors.ErrCourseIDRequired)
	}
	if items == nil {
		items = []domain.GradeItem{}
	}
	if err := gradestore.CheckItems(courseID, items); err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, fmt.Errorf("failed to encode grade items: %w", err))
	}

	query, args, err := buildSaveGradesQuery(courseID, raw, r.now().UTC())
	if err != nil {
		return apperrors.NewStorageError(apperrors.OpSave, courseID, fmt.Errorf("error building save query: %w", err))
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error executing save grades query")
		return apperrors.NewStorageError(apperrors.OpSave, courseID, err)
	}
	return nil
}
