// Package export serializes the visible task rows for the clipboard.
package export

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/goccy/go-json"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/projection"
)

type Snapshot struct {
	Filter model.FilterMode `json:"filter"`
	Tasks  []TaskRecord     `json:"tasks"`
}

type TaskRecord struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func NewSnapshot(mode model.FilterMode, rows []projection.Row) Snapshot {
	out := Snapshot{Filter: mode, Tasks: make([]TaskRecord, 0, len(rows))}
	for _, r := range rows {
		out.Tasks = append(out.Tasks, TaskRecord{
			ID:        int64(r.Task.ID),
			Text:      r.Task.Text,
			Completed: r.Task.Completed,
		})
	}
	return out
}

func EncodeJSON(s Snapshot) ([]byte, error) {
	payload, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("export: clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

// NoopClipboard discards writes. Tests and headless sessions use it.
type NoopClipboard struct{}

func (NoopClipboard) WriteAll(string) error { return nil }

// CopyJSON writes the snapshot to cb and returns the number of tasks copied.
func CopyJSON(cb Clipboard, s Snapshot) (int, error) {
	payload, err := EncodeJSON(s)
	if err != nil {
		return 0, err
	}
	if err := cb.WriteAll(string(payload)); err != nil {
		return 0, fmt.Errorf("copy to clipboard: %w", err)
	}
	return len(s.Tasks), nil
}
