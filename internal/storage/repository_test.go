package storage

import (
	"context"
	"errors"
	"testing"
)

type repoFactory struct {
	name string
	open func(t *testing.T) Repository
}

func backends() []repoFactory {
	return []repoFactory{
		{name: "memory", open: func(t *testing.T) Repository {
			return NewMemoryRepository()
		}},
		{name: "sqlite", open: func(t *testing.T) Repository {
			t.Helper()
			repo, err := OpenInMemorySQLite()
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		}},
	}
}

func TestTaskCRUDAndList(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.name, func(t *testing.T) {
			repo := backend.open(t)
			ctx := context.Background()

			for i, text := range []string{"A", "B", "C"} {
				if err := repo.CreateTask(ctx, Task{ID: int64(i + 1), Text: text}); err != nil {
					t.Fatalf("create %s: %v", text, err)
				}
			}

			got, err := repo.GetTask(ctx, 2)
			if err != nil {
				t.Fatalf("get task: %v", err)
			}
			if got.Text != "B" || got.Completed {
				t.Fatalf("unexpected task get result: %#v", got)
			}

			got.Completed = true
			if err := repo.UpdateTask(ctx, got); err != nil {
				t.Fatalf("update task: %v", err)
			}

			updated, err := repo.GetTask(ctx, 2)
			if err != nil || !updated.Completed {
				t.Fatalf("expected completed task after update: %#v %v", updated, err)
			}

			if err := repo.DeleteTask(ctx, 1); err != nil {
				t.Fatalf("delete task: %v", err)
			}
			all, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list all: %v", err)
			}
			if len(all) != 2 || all[0].Text != "B" || all[1].Text != "C" {
				t.Fatalf("expected insertion order B,C after delete, got %#v", all)
			}
		})
	}
}

func TestMissingTaskIsNotFound(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.name, func(t *testing.T) {
			repo := backend.open(t)
			ctx := context.Background()

			if _, err := repo.GetTask(ctx, 99); !errors.Is(err, ErrNotFound) {
				t.Fatalf("get: expected ErrNotFound, got %v", err)
			}
			if err := repo.UpdateTask(ctx, Task{ID: 99, Text: "x"}); !errors.Is(err, ErrNotFound) {
				t.Fatalf("update: expected ErrNotFound, got %v", err)
			}
			if err := repo.DeleteTask(ctx, 99); !errors.Is(err, ErrNotFound) {
				t.Fatalf("delete: expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.name, func(t *testing.T) {
			repo := backend.open(t)
			ctx := context.Background()

			if err := repo.CreateTask(ctx, Task{ID: 1, Text: "first"}); err != nil {
				t.Fatalf("create: %v", err)
			}
			err := repo.CreateTask(ctx, Task{ID: 1, Text: "second"})
			if !errors.Is(err, ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate, got %v", err)
			}
		})
	}
}

func TestTextStoredVerbatim(t *testing.T) {
	texts := []string{
		"  padded  ",
		"\x00x",
		"\u00a0nbsp",
		"tab\tinside",
		"emoji \U0001F95B",
	}
	for _, backend := range backends() {
		t.Run(backend.name, func(t *testing.T) {
			repo := backend.open(t)
			ctx := context.Background()
			for i, text := range texts {
				if err := repo.CreateTask(ctx, Task{ID: int64(i + 1), Text: text}); err != nil {
					t.Fatalf("create %q: %v", text, err)
				}
			}
			all, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(all) != len(texts) {
				t.Fatalf("expected %d tasks, got %#v", len(texts), all)
			}
			for i, text := range texts {
				if all[i].Text != text {
					t.Fatalf("task %d: expected %q, got %q", i+1, text, all[i].Text)
				}
			}
		})
	}
}

func TestListReturnsCopy(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.name, func(t *testing.T) {
			repo := backend.open(t)
			ctx := context.Background()
			if err := repo.CreateTask(ctx, Task{ID: 1, Text: "keep"}); err != nil {
				t.Fatalf("create: %v", err)
			}
			first, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			first[0].Text = "changed"
			second, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list again: %v", err)
			}
			if second[0].Text != "keep" {
				t.Fatalf("list result aliases repository state: %#v", second)
			}
		})
	}
}

func TestParseBackend(t *testing.T) {
	cases := map[string]Backend{
		"":         BackendMemory,
		"memory":   BackendMemory,
		" SQLite ": BackendSQLite,
		"MEMORY":   BackendMemory,
	}
	for raw, want := range cases {
		got, err := ParseBackend(raw)
		if err != nil || got != want {
			t.Fatalf("ParseBackend(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseBackend("postgres"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestOpenBackend(t *testing.T) {
	for _, b := range []Backend{BackendMemory, BackendSQLite, ""} {
		repo, err := Open(b)
		if err != nil {
			t.Fatalf("open %q: %v", b, err)
		}
		_ = repo.Close()
	}
	if _, err := Open(Backend("postgres")); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
