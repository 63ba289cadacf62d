package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/projection"
)

type recordingClipboard struct {
	text string
	err  error
}

func (r *recordingClipboard) WriteAll(text string) error {
	if r.err != nil {
		return r.err
	}
	r.text = text
	return nil
}

func TestCopyJSONWritesVisibleRows(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Text: "A", Completed: true},
		{ID: 2, Text: "B"},
	}
	rows := projection.Project(tasks, model.FilterCompleted)
	cb := &recordingClipboard{}

	n, err := CopyJSON(cb, NewSnapshot(model.FilterCompleted, rows))
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 task copied, got %d", n)
	}

	var got Snapshot
	if err := json.Unmarshal([]byte(cb.text), &got); err != nil {
		t.Fatalf("clipboard is not json: %v\n%s", err, cb.text)
	}
	if got.Filter != model.FilterCompleted || len(got.Tasks) != 1 || got.Tasks[0].Text != "A" || !got.Tasks[0].Completed {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if !strings.Contains(cb.text, `"filter": "completed"`) {
		t.Fatalf("expected indented filter field, got %s", cb.text)
	}
}

func TestCopyJSONEmptyList(t *testing.T) {
	cb := &recordingClipboard{}
	if _, err := CopyJSON(cb, NewSnapshot(model.FilterAll, nil)); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !strings.Contains(cb.text, `"tasks": []`) {
		t.Fatalf("expected empty tasks array, got %s", cb.text)
	}
}

func TestCopyJSONClipboardFailure(t *testing.T) {
	boom := errors.New("no display")
	_, err := CopyJSON(&recordingClipboard{err: boom}, NewSnapshot(model.FilterAll, nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}
