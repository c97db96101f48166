package gradestore

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
)

type storeFactory func(t *testing.T) domain.GradeStore

func storeFactories() map[string]storeFactory {
	return map[string]storeFactory{
		"file": func(t *testing.T) domain.GradeStore {
			s, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) domain.GradeStore {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "grades.db"))
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
		"memory": func(t *testing.T) domain.GradeStore {
			return NewMemoryStore()
		},
	}
}

func sampleItems() []domain.GradeItem {
	return []domain.GradeItem{
		{ID: "a1", Name: "Midterm", Weight: 30, Grade: 4.0},
		{ID: "b2", Name: "Final", Weight: 40, Grade: 4.5},
		{ID: "c3", Name: "Homework", Weight: 20, Grade: 5.0},
	}
}

func TestGradeStores(t *testing.T) {
	for name, newStore := range storeFactories() {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			t.Run("load absent course", func(t *testing.T) {
				store := newStore(t)
				items, found, err := store.Load(context.Background(), "never-saved")
				require.NoError(t, err)
				assert.False(t, found)
				assert.Nil(t, items)
			})

			t.Run("round trip", func(t *testing.T) {
				store := newStore(t)
				ctx := context.Background()
				require.NoError(t, store.Save(ctx, "cs101", sampleItems()))

				items, found, err := store.Load(ctx, "cs101")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, sampleItems(), items)
			})

			t.Run("saving twice is idempotent", func(t *testing.T) {
				store := newStore(t)
				ctx := context.Background()
				require.NoError(t, store.Save(ctx, "cs101", sampleItems()))
				require.NoError(t, store.Save(ctx, "cs101", sampleItems()))

				items, _, err := store.Load(ctx, "cs101")
				require.NoError(t, err)
				assert.Equal(t, sampleItems(), items)
			})

			t.Run("save overwrites instead of merging", func(t *testing.T) {
				store := newStore(t)
				ctx := context.Background()
				require.NoError(t, store.Save(ctx, "cs101", sampleItems()))
				replacement := []domain.GradeItem{{ID: "z9", Name: "Project", Weight: 50, Grade: 90}}
				require.NoError(t, store.Save(ctx, "cs101", replacement))

				items, _, err := store.Load(ctx, "cs101")
				require.NoError(t, err)
				assert.Equal(t, replacement, items)
			})

			t.Run("empty sequence is found", func(t *testing.T) {
				store := newStore(t)
				ctx := context.Background()
				require.NoError(t, store.Save(ctx, "cs101", nil))

				items, found, err := store.Load(ctx, "cs101")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Empty(t, items)
			})

			t.Run("courses are isolated", func(t *testing.T) {
				store := newStore(t)
				ctx := context.Background()
				require.NoError(t, store.Save(ctx, "math/201", sampleItems()[:1]))
				require.NoError(t, store.Save(ctx, "phys151", sampleItems()[1:]))

				items, _, err := store.Load(ctx, "math/201")
				require.NoError(t, err)
				assert.Equal(t, sampleItems()[:1], items)
			})

			t.Run("empty course id", func(t *testing.T) {
				store := newStore(t)
				_, _, err := store.Load(context.Background(), "")
				assert.ErrorIs(t, err, apperrors.ErrStorage)
				assert.ErrorIs(t, err, apperrors.ErrCourseIDRequired)

				err = store.Save(context.Background(), "", sampleItems())
				assert.ErrorIs(t, err, apperrors.ErrStorage)
			})

			t.Run("non-finite values fail to save", func(t *testing.T) {
				store := newStore(t)
				bad := []domain.GradeItem{{ID: "x", Name: "Broken", Weight: math.NaN(), Grade: 1}}
				err := store.Save(context.Background(), "cs101", bad)

				var storageErr *apperrors.StorageError
				require.True(t, errors.As(err, &storageErr))
				assert.Equal(t, apperrors.OpSave, storageErr.Op)
				assert.Equal(t, "cs101", storageErr.CourseID)
			})

			t.Run("items that could not be loaded back are not saved", func(t *testing.T) {
				tests := []struct {
					name  string
					items []domain.GradeItem
				}{
					{name: "duplicate ids", items: []domain.GradeItem{
						{ID: "a", Name: "Midterm", Weight: 30, Grade: 4},
						{ID: "a", Name: "Duplicate", Weight: 10, Grade: 3},
					}},
					{name: "empty name", items: []domain.GradeItem{{ID: "a", Name: "", Weight: 30, Grade: 4}}},
					{name: "blank name", items: []domain.GradeItem{{ID: "a", Name: "   ", Weight: 30, Grade: 4}}},
				}
				for _, tt := range tests {
					t.Run(tt.name, func(t *testing.T) {
						store := newStore(t)
						ctx := context.Background()
						require.NoError(t, store.Save(ctx, "cs101", sampleItems()))

						err := store.Save(ctx, "cs101", tt.items)
						assert.ErrorIs(t, err, apperrors.ErrStorage)
						assert.ErrorIs(t, err, apperrors.ErrInvalidGradeItem)

						items, found, err := store.Load(ctx, "cs101")
						require.NoError(t, err)
						assert.True(t, found)
						assert.Equal(t, sampleItems(), items)
					})
				}
			})

			t.Run("cancelled context", func(t *testing.T) {
				store := newStore(t)
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				_, _, err := store.Load(ctx, "cs101")
				assert.ErrorIs(t, err, apperrors.ErrStorage)
			})
		})
	}
}

func TestFileStore_CorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.recordPath("cs101"), []byte("{not json"), 0o644))

	_, found, err := store.Load(context.Background(), "cs101")
	assert.False(t, found)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, apperrors.ErrCorruptRecord)
}

func TestFileStore_RecordOfAnotherCourse(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "cs101", sampleItems()))

	data, err := os.ReadFile(store.recordPath("cs101"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.recordPath("math201"), data, 0o644))

	_, found, err := store.Load(context.Background(), "math201")
	assert.False(t, found)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, apperrors.ErrCorruptRecord)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "cs101", sampleItems()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recordExt, filepath.Ext(entries[0].Name()))
}

func TestFileStore_UnreadableMedium(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// A directory where the record should be makes the read fail.
	require.NoError(t, os.Mkdir(store.recordPath("cs101"), 0o755))

	_, _, err = store.Load(context.Background(), "cs101")
	var storageErr *apperrors.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, apperrors.OpLoad, storageErr.Op)
}

func TestSQLiteStore_CorruptRecord(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "grades.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.db.Exec(
		"INSERT INTO course_grades (course_id, record, updated_at) VALUES (?, ?, ?)",
		"cs101", `{"version":7,"items":[]}`, "2024-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, _, err = store.Load(context.Background(), "cs101")
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedVersion)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "cs101", sampleItems()))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	items, found, err := reopened.Load(context.Background(), "cs101")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sampleItems(), items)
}
