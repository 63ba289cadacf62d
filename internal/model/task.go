package model

import (
	"errors"
	"strings"
)

var ErrEmptyText = errors.New("model: task text is required")

// TaskID identifies a task for the lifetime of a session. IDs are handed out
// in increasing order, so comparing two IDs also compares creation order.
type TaskID int64

type Task struct {
	ID        TaskID
	Text      string
	Completed bool
}

// HasText reports whether text would be accepted as a task description.
func HasText(text string) bool {
	return strings.TrimSpace(text) != ""
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id must be positive")
	}
	if !HasText(t.Text) {
		return ErrEmptyText
	}
	return nil
}

func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}
