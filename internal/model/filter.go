package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFilter = errors.New("model: invalid filter mode")

type FilterMode string

const (
	FilterAll         FilterMode = "all"
	FilterCompleted   FilterMode = "completed"
	FilterUncompleted FilterMode = "uncompleted"
)

func (f FilterMode) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterUncompleted:
		return true
	default:
		return false
	}
}

// Matches reports whether a task is visible under the mode.
func (f FilterMode) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterUncompleted:
		return !t.Completed
	default:
		return true
	}
}

func ParseFilterMode(raw string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all", "":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "uncompleted", "todo", "open", "active":
		return FilterUncompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
}
