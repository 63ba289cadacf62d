package storage

import (
	"database/sql"
	"testing"
)

func TestMigrateUpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", inMemoryDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.CreateTask(t.Context(), Task{ID: 1, Text: "Migrated task"}); err != nil {
		t.Fatalf("insert after migrate failed: %v", err)
	}
	got, err := repo.GetTask(t.Context(), 1)
	if err != nil {
		t.Fatalf("get after migrate failed: %v", err)
	}
	if got.Text != "Migrated task" || got.Completed {
		t.Fatalf("unexpected task after migrate: %#v", got)
	}
}

func TestSchemaRejectsInvalidCompletedValue(t *testing.T) {
	repo, err := OpenInMemorySQLite()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	_, err = repo.db.ExecContext(t.Context(), `INSERT INTO tasks (id, text, completed) VALUES (1, 'x', 2)`)
	if err == nil {
		t.Fatal("expected check constraint to reject completed=2")
	}
}
