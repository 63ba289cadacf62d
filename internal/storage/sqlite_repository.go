package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const inMemoryDSN = ":memory:"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == inMemoryDSN {
		// Every pooled connection to :memory: gets its own database.
		db.SetMaxOpenConns(1)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// OpenInMemorySQLite opens a migrated database that lives only as long as
// the returned repository.
func OpenInMemorySQLite() (*SQLiteRepository, error) {
	repo, err := OpenSQLite(inMemoryDSN)
	if err != nil {
		return nil, err
	}
	if err := MigrateUp(repo.db); err != nil {
		_ = repo.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO tasks (id, text, completed) VALUES (?, ?, ?)`,
		in.ID, in.Text, boolInt(in.Completed))
	if isConstraintError(err, sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %d", ErrDuplicate, in.ID)
	}
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, text, completed FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET text = ?, completed = ? WHERE id = ?`,
		in.Text, boolInt(in.Completed), in.ID)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]Task, error) {
	// IDs are assigned in increasing order, so id order is insertion order.
	rows, err := r.db.QueryContext(ctx, `SELECT id, text, completed FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed int
	if err := s.Scan(&out.ID, &out.Text, &completed); err != nil {
		return Task{}, err
	}
	out.Completed = completed == 1
	return out, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func isConstraintError(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == code
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
