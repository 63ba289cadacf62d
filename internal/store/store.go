// Package store owns the session's ordered task list. It is the only code
// allowed to create, flip, or remove tasks; everything else reads copies.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
)

type Store struct {
	repo   storage.Repository
	nextID model.TaskID
	logger *slog.Logger
}

func New(repo storage.Repository, logger *slog.Logger) *Store {
	if repo == nil {
		repo = storage.NewMemoryRepository()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{repo: repo, nextID: 1, logger: logger}
}

// NewMemory is a store over a fresh in-memory repository.
func NewMemory() *Store {
	return New(storage.NewMemoryRepository(), nil)
}

func (s *Store) Close() error {
	return s.repo.Close()
}

// Add appends a task and reports whether one was created. Blank text is
// ignored without error.
func (s *Store) Add(ctx context.Context, text string) (model.Task, bool, error) {
	task := model.Task{ID: s.nextID, Text: text}
	if err := task.Validate(); err != nil {
		if errors.Is(err, model.ErrEmptyText) {
			return model.Task{}, false, nil
		}
		return model.Task{}, false, fmt.Errorf("add task: %w", err)
	}
	if err := s.repo.CreateTask(ctx, toEntity(task)); err != nil {
		return model.Task{}, false, fmt.Errorf("add task: %w", err)
	}
	s.nextID++
	s.logger.Debug("task added", "id", task.ID)
	return task, true, nil
}

// Toggle flips completion on the task and reports whether it existed.
func (s *Store) Toggle(ctx context.Context, id model.TaskID) (bool, error) {
	current, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	next := current.Toggled()
	if err := s.repo.UpdateTask(ctx, toEntity(next)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("toggle task %d: %w", id, err)
	}
	s.logger.Debug("task toggled", "id", id, "completed", next.Completed)
	return true, nil
}

// Delete removes the task and reports whether it existed.
func (s *Store) Delete(ctx context.Context, id model.TaskID) (bool, error) {
	if err := s.repo.DeleteTask(ctx, int64(id)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	s.logger.Debug("task deleted", "id", id)
	return true, nil
}

func (s *Store) Get(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	row, err := s.repo.GetTask(ctx, int64(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Task{}, false, nil
		}
		return model.Task{}, false, fmt.Errorf("get task %d: %w", id, err)
	}
	return fromEntity(row), true, nil
}

// List returns every task in insertion order. The slice is a copy.
func (s *Store) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEntity(row))
	}
	return out, nil
}

func toEntity(t model.Task) storage.Task {
	return storage.Task{ID: int64(t.ID), Text: t.Text, Completed: t.Completed}
}

func fromEntity(t storage.Task) model.Task {
	return model.Task{ID: model.TaskID(t.ID), Text: t.Text, Completed: t.Completed}
}
