package derive

import (
	"time"

	"github.com/eventify/eventify-client/internal/domain"
)

// TaskBuckets classifies tasks against a reference day. The two buckets are
// mutually exclusive: a task is never in both.
type TaskBuckets struct {
	Overdue []domain.Task
	Today   []domain.Task
}

// BucketTasks recomputes the overdue/today classification from scratch.
// A task is overdue when its status carries the terminal late marker, or
// when its due date falls strictly before the reference day and the task is
// not done. A task due exactly on the reference day and not done lands in
// the today bucket. Done tasks and tasks without a parseable due date (and
// without the late marker) are in neither.
func BucketTasks(tasks []domain.Task, today time.Time) TaskBuckets {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	var b TaskBuckets
	for _, t := range tasks {
		if t.Status == domain.TaskLate {
			b.Overdue = append(b.Overdue, t)
			continue
		}
		if t.Status == domain.TaskDone {
			continue
		}
		due, ok := dueDay(t.DueDate)
		if !ok {
			continue
		}
		switch {
		case due.Before(day):
			b.Overdue = append(b.Overdue, t)
		case due.Equal(day):
			b.Today = append(b.Today, t)
		}
	}
	return b
}

// dueDay parses the calendar-date prefix of a due date string, ignoring any
// time-of-day component.
func dueDay(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
