package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/aceup/internal/domain"
	"github.com/yigit/aceup/internal/pkg/apperrors"
	"golang.org/x/sync/semaphore"
)

// Warnings attached to a grade book view
const (
	WarningLoadFailed     = "Saved grades could not be loaded; showing an empty grade book"
	WarningUnsavedChanges = "Latest changes are not saved yet; they will be retried on the next change"
)

// GradeBookView is a grade book together with its persistence status.
type GradeBookView struct {
	Book *domain.GradeBook
	// Degraded is set when stored grades could not be read and Book is a placeholder.
	Degraded bool
	// Unsaved is set when Book holds changes the store has not accepted yet.
	Unsaved bool
	Warning string
}

// GradeService defines the grade book operations for a course.
type GradeService interface {
	GetGradeBook(ctx context.Context, courseID string) (*GradeBookView, error)
	AddItem(ctx context.Context, courseID, name string, weight, grade float64) (*GradeBookView, error)
	RemoveItem(ctx context.Context, courseID, itemID string) (*GradeBookView, error)
	ReplaceItem(ctx context.Context, courseID, itemID, name string, weight, grade float64) (*GradeBookView, error)
	ClearGradeBook(ctx context.Context, courseID string) (*GradeBookView, error)
	FlushPending(ctx context.Context) error
}

// courseSession sequences access to one course. pending holds the authoritative
// book while it has changes the store rejected.
// refs counts callers holding or waiting for sem and is guarded by gradeService.mu.
type courseSession struct {
	sem     *semaphore.Weighted
	pending *domain.GradeBook
	refs    int
}

type gradeService struct {
	store  domain.GradeStore
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*courseSession
}

// NewGradeService creates a grade service backed by store.
func NewGradeService(store domain.GradeStore, lgr zerolog.Logger) GradeService {
	return &gradeService{
		store:    store,
		logger:   lgr,
		sessions: make(map[string]*courseSession),
	}
}

func (s *gradeService) session(courseID string) *courseSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[courseID]
	if !ok {
		sess = &courseSession{sem: semaphore.NewWeighted(1)}
		s.sessions[courseID] = sess
	}
	sess.refs++
	return sess
}

// releaseSession drops a reference and forgets the session once it is unused and clean.
// Callers holding sem must call it before releasing sem.
func (s *gradeService) releaseSession(courseID string, sess *courseSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.refs--
	if sess.refs == 0 && sess.pending == nil {
		delete(s.sessions, courseID)
	}
}

// withCourse runs fn while holding the course's session.
func (s *gradeService) withCourse(ctx context.Context, courseID string, fn func(sess *courseSession) error) error {
	if courseID == "" {
		return apperrors.NewBadRequestError(apperrors.ErrCourseIDRequired.Error())
	}

	sess := s.session(courseID)
	if err := sess.sem.Acquire(ctx, 1); err != nil {
		s.releaseSession(courseID, sess)
		return fmt.Errorf("waiting for course %s: %w", courseID, err)
	}
	defer func() {
		s.releaseSession(courseID, sess)
		sess.sem.Release(1)
	}()

	return fn(sess)
}

// current returns the authoritative book for the session, loading it from the store when clean.
func (s *gradeService) current(ctx context.Context, courseID string, sess *courseSession) (*domain.GradeBook, error) {
	if sess.pending != nil {
		return sess.pending, nil
	}

	items, found, err := s.store.Load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !found {
		items = nil
	}

	book, err := domain.NewGradeBook(courseID, items...)
	if err != nil {
		return nil, apperrors.NewStorageError(apperrors.OpLoad, courseID, err)
	}
	return book, nil
}

// persist saves book. In-flight writes are not cancelled with the request.
// On failure the book stays pending and is retried by the next change.
func (s *gradeService) persist(ctx context.Context, courseID string, sess *courseSession, book *domain.GradeBook) error {
	if err := s.store.Save(context.WithoutCancel(ctx), courseID, book.Items()); err != nil {
		sess.pending = book
		s.logger.Error().Err(err).Str("courseId", courseID).Int("items", book.Len()).
			Msg("Failed to save grade book, keeping changes in memory")
		return err
	}
	sess.pending = nil
	return nil
}

func (s *gradeService) mutate(ctx context.Context, courseID string, fn func(book *domain.GradeBook) error) (*GradeBookView, error) {
	var view *GradeBookView
	err := s.withCourse(ctx, courseID, func(sess *courseSession) error {
		book, err := s.current(ctx, courseID, sess)
		if err != nil {
			s.logger.Error().Err(err).Str("courseId", courseID).Msg("Cannot change grade book, load failed")
			return err
		}

		// Mutate a copy so a rejected change leaves the session untouched.
		working, err := domain.NewGradeBook(courseID, book.Items()...)
		if err != nil {
			return err
		}
		if err := fn(working); err != nil {
			return err
		}

		if err := s.persist(ctx, courseID, sess, working); err != nil {
			return err
		}
		view = &GradeBookView{Book: working}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetGradeBook returns the grade book of a course. A storage failure is reported as a
// degraded, empty book rather than an error.
func (s *gradeService) GetGradeBook(ctx context.Context, courseID string) (*GradeBookView, error) {
	var view *GradeBookView
	err := s.withCourse(ctx, courseID, func(sess *courseSession) error {
		if sess.pending != nil {
			view = &GradeBookView{Book: sess.pending, Unsaved: true, Warning: WarningUnsavedChanges}
			return nil
		}

		book, err := s.current(ctx, courseID, sess)
		if err != nil {
			if !errors.Is(err, apperrors.ErrStorage) {
				return err
			}
			s.logger.Warn().Err(err).Str("courseId", courseID).Msg("Grade book load failed, presenting empty grade book")
			empty, _ := domain.NewGradeBook(courseID)
			view = &GradeBookView{Book: empty, Degraded: true, Warning: WarningLoadFailed}
			return nil
		}

		view = &GradeBookView{Book: book}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddItem appends a new grade item to a course.
func (s *gradeService) AddItem(ctx context.Context, courseID, name string, weight, grade float64) (*GradeBookView, error) {
	item := domain.NewGradeItem(name, weight, grade)
	view, err := s.mutate(ctx, courseID, func(book *domain.GradeBook) error {
		return book.Add(item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", courseID).Str("itemId", item.ID).Msg("Grade item added")
	return view, nil
}

// RemoveItem deletes a grade item. Removing an unknown item leaves the book unchanged.
func (s *gradeService) RemoveItem(ctx context.Context, courseID, itemID string) (*GradeBookView, error) {
	removed := false
	view, err := s.mutate(ctx, courseID, func(book *domain.GradeBook) error {
		removed = book.Remove(itemID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed {
		s.logger.Info().Str("courseId", courseID).Str("itemId", itemID).Msg("Grade item removed")
	} else {
		s.logger.Debug().Str("courseId", courseID).Str("itemId", itemID).Msg("Grade item to remove not found")
	}
	return view, nil
}

// ReplaceItem removes an existing item and appends its replacement under a new id.
func (s *gradeService) ReplaceItem(ctx context.Context, courseID, itemID, name string, weight, grade float64) (*GradeBookView, error) {
	item := domain.NewGradeItem(name, weight, grade)
	view, err := s.mutate(ctx, courseID, func(book *domain.GradeBook) error {
		if !book.Remove(itemID) {
			return apperrors.NewCustomError(apperrors.ErrGradeItemNotFound,
				fmt.Sprintf("grade item %s not found", itemID))
		}
		return book.Add(item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", courseID).Str("oldItemId", itemID).Str("itemId", item.ID).Msg("Grade item replaced")
	return view, nil
}

// ClearGradeBook stores an empty grade book for a course.
func (s *gradeService) ClearGradeBook(ctx context.Context, courseID string) (*GradeBookView, error) {
	var view *GradeBookView
	err := s.withCourse(ctx, courseID, func(sess *courseSession) error {
		empty, _ := domain.NewGradeBook(courseID)
		if err := s.persist(ctx, courseID, sess, empty); err != nil {
			return err
		}
		view = &GradeBookView{Book: empty}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", courseID).Msg("Grade book cleared")
	return view, nil
}

// FlushPending retries saving every course that has unsaved changes.
func (s *gradeService) FlushPending(ctx context.Context) error {
	s.mu.Lock()
	courseIDs := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		courseIDs = append(courseIDs, id)
	}
	s.mu.Unlock()

	var errs []error
	for _, courseID := range courseIDs {
		err := s.withCourse(ctx, courseID, func(sess *courseSession) error {
			if sess.pending == nil {
				return nil
			}
			return s.persist(ctx, courseID, sess, sess.pending)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
