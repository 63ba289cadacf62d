package storage

import (
	"context"
	"fmt"
)

type MemoryRepository struct {
	tasks []Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Close() error { return nil }

func (r *MemoryRepository) CreateTask(_ context.Context, in Task) error {
	if r.indexOf(in.ID) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicate, in.ID)
	}
	r.tasks = append(r.tasks, in)
	return nil
}

func (r *MemoryRepository) GetTask(_ context.Context, id int64) (Task, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Task{}, ErrNotFound
	}
	return r.tasks[idx], nil
}

func (r *MemoryRepository) UpdateTask(_ context.Context, in Task) error {
	idx := r.indexOf(in.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.tasks[idx] = in
	return nil
}

func (r *MemoryRepository) DeleteTask(_ context.Context, id int64) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func (r *MemoryRepository) ListTasks(_ context.Context) ([]Task, error) {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *MemoryRepository) indexOf(id int64) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
