package domain

import (
	"fmt"

	"github.com/yigit/aceup/internal/pkg/apperrors"
)

// GradeBook is the ordered collection of grade items for exactly one course.
// It is not safe for concurrent mutation; callers sequence access per course.
type GradeBook struct {
	courseID string
	items    []GradeItem
}

// NewGradeBook creates a grade book for courseID seeded with items in order.
// Seed items are validated exactly like Add.
func NewGradeBook(courseID string, items ...GradeItem) (*GradeBook, error) {
	book := &GradeBook{
		courseID: courseID,
		items:    make([]GradeItem, 0, len(items)),
	}
	for _, item := range items {
		if err := book.Add(item); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// CourseID returns the course this book belongs to.
func (b *GradeBook) CourseID() string {
	return b.courseID
}

// Add appends item to the end of the book.
// Any cumulative weight is accepted so a term can be graded partially.
func (b *GradeBook) Add(item GradeItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if b.indexOf(item.ID) >= 0 {
		return apperrors.NewInvalidGradeItemError(fmt.Sprintf("grade item %s already exists", item.ID))
	}
	b.items = append(b.items, item)
	return nil
}

// Remove deletes the item with the given id and reports whether it was present.
// Removing an unknown id is a no-op.
func (b *GradeBook) Remove(id string) bool {
	idx := b.indexOf(id)
	if idx < 0 {
		return false
	}
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	return true
}

// Get returns the item with the given id.
func (b *GradeBook) Get(id string) (GradeItem, bool) {
	idx := b.indexOf(id)
	if idx < 0 {
		return GradeItem{}, false
	}
	return b.items[idx], true
}

// Items returns a copy of the items in insertion order.
func (b *GradeBook) Items() []GradeItem {
	out := make([]GradeItem, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of items.
func (b *GradeBook) Len() int {
	return len(b.items)
}

// WeightUsed returns the sum of all item weights, unclamped.
func (b *GradeBook) WeightUsed() float64 {
	var total float64
	for _, item := range b.items {
		total += item.Weight
	}
	return total
}

// Compute returns the weighted average renormalized by the weight actually used:
//
//	(Σ grade*weight/100) / W * 100
//
// An empty book or a zero total weight yields 0. No rounding is applied.
func (b *GradeBook) Compute() float64 {
	totalWeight := b.WeightUsed()
	if totalWeight == 0 {
		return 0
	}

	var weighted float64
	for _, item := range b.items {
		weighted += item.Grade * item.Weight / 100
	}
	return weighted / totalWeight * 100
}

func (b *GradeBook) indexOf(id string) int {
	for i := range b.items {
		if b.items[i].ID == id {
			return i
		}
	}
	return -1
}
