package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{ID: 1, Text: "Buy milk"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		err := Task{ID: 1, Text: text}.Validate()
		if !errors.Is(err, ErrEmptyText) {
			t.Fatalf("text %q: expected ErrEmptyText, got %v", text, err)
		}
	}
}

func TestTaskValidateRejectsZeroID(t *testing.T) {
	err := Task{Text: "no id"}.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: task id must be positive" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskToggledLeavesOriginal(t *testing.T) {
	task := Task{ID: 7, Text: "A"}
	flipped := task.Toggled()
	if !flipped.Completed || task.Completed {
		t.Fatalf("unexpected toggle result: orig=%+v flipped=%+v", task, flipped)
	}
	if flipped.Toggled().Completed {
		t.Fatal("expected double toggle to restore completed=false")
	}
}
