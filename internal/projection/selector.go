package projection

import (
	"fmt"

	"github.com/sandeepkv93/todo/internal/model"
)

// Selector holds the active filter mode. The zero value shows all tasks.
type Selector struct {
	mode model.FilterMode
}

// NewSelector starts in mode. An unknown mode falls back to all; callers
// that need to reject it should validate first or use Set.
func NewSelector(mode model.FilterMode) Selector {
	var s Selector
	if err := s.Set(mode); err != nil {
		s.SetAll()
	}
	return s
}

func (s Selector) Mode() model.FilterMode {
	if s.mode == "" {
		return model.FilterAll
	}
	return s.mode
}

func (s *Selector) SetAll()             { s.mode = model.FilterAll }
func (s *Selector) SetCompletedOnly()   { s.mode = model.FilterCompleted }
func (s *Selector) SetUncompletedOnly() { s.mode = model.FilterUncompleted }

// Set switches to mode, leaving the current mode in place if it is unknown.
func (s *Selector) Set(mode model.FilterMode) error {
	switch mode {
	case model.FilterAll:
		s.SetAll()
	case model.FilterCompleted:
		s.SetCompletedOnly()
	case model.FilterUncompleted:
		s.SetUncompletedOnly()
	default:
		return fmt.Errorf("%w: %q", model.ErrInvalidFilter, mode)
	}
	return nil
}
