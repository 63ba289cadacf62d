package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("storage: not found")
	ErrDuplicate = errors.New("storage: duplicate id")

	ErrUnknownBackend = errors.New("storage: unknown backend")
)

type Repository interface {
	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id int64) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id int64) error
	ListTasks(ctx context.Context) ([]Task, error)
	Close() error
}

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend normalizes a backend name from flags, env or config. An empty
// name selects the memory backend.
func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "":
		return BackendMemory, nil
	case BackendMemory, BackendSQLite:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, raw)
	}
}

// Open returns a session-scoped repository for the backend. Neither backend
// writes to disk.
func Open(backend Backend) (Repository, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryRepository(), nil
	case BackendSQLite:
		repo, err := OpenInMemorySQLite()
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
