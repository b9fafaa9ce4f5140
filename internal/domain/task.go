package domain

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Conventional priority values. Any other text is accepted as-is.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	DefaultPriority = PriorityMedium
)

// Task represents a single to-do item.
// Optional fields are nil when unset. DueDate is a calendar date with no
// time-of-day or zone.
type Task struct {
	ID        int64
	Title     string
	Completed bool
	Priority  string
	DueDate   *civil.Date
	Category  *string
	Notes     *string
}

// TaskOption sets an optional field during construction.
type TaskOption func(*Task)

// WithCompleted sets the completion state.
func WithCompleted(completed bool) TaskOption {
	return func(t *Task) {
		t.Completed = completed
	}
}

// WithPriority sets the priority text.
func WithPriority(priority string) TaskOption {
	return func(t *Task) {
		t.Priority = priority
	}
}

// WithDueDate sets the due date.
func WithDueDate(date civil.Date) TaskOption {
	return func(t *Task) {
		t.DueDate = &date
	}
}

// WithCategory sets the category label.
func WithCategory(category string) TaskOption {
	return func(t *Task) {
		t.Category = &category
	}
}

// WithNotes sets the free-text notes.
func WithNotes(notes string) TaskOption {
	return func(t *Task) {
		t.Notes = &notes
	}
}

// NewTask creates a Task with the given id and title. Fields not set by an
// option take their defaults: not completed, medium priority, no due date,
// no category and no notes. No validation is performed, so an empty title
// or negative id is accepted.
func NewTask(id int64, title string, opts ...TaskOption) Task {
	t := Task{
		ID:       id,
		Title:    title,
		Priority: DefaultPriority,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// IsOverdue reports whether the task is overdue as of the system's local date.
func (t Task) IsOverdue() bool {
	return t.IsOverdueOn(SystemClock{})
}

// IsOverdueOn reports whether the task is overdue as of the clock's current date.
func (t Task) IsOverdueOn(clock Clock) bool {
	return t.IsOverdueAt(clock.Today())
}

// IsOverdueAt reports whether the task is incomplete and due strictly before today.
func (t Task) IsOverdueAt(today civil.Date) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(today)
}

// String returns a one-line summary for display purposes.
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s [%s]", t.ID, t.Title, t.Priority)
	if t.Completed {
		b.WriteString(" done")
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, " due %s", t.DueDate.String())
	}
	if t.Category != nil {
		fmt.Fprintf(&b, " @%s", *t.Category)
	}
	return b.String()
}
