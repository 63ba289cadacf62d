// Package projection derives the visible task rows from the store contents
// and the active filter mode.
package projection

import "github.com/sandeepkv93/todo/internal/model"

type ToggleAction string

const (
	ActionMarkComplete   ToggleAction = "mark complete"
	ActionMarkIncomplete ToggleAction = "mark incomplete"
)

// Row is one rendered task. Struck rows draw their text with strikethrough.
type Row struct {
	Task      model.Task
	Struck    bool
	Toggle    ToggleAction
	Deletable bool
}

// Project maps tasks to rows for mode, preserving store order. Only the
// completed view offers a delete affordance.
func Project(tasks []model.Task, mode model.FilterMode) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		if !mode.Matches(t) {
			continue
		}
		row := Row{Task: t, Toggle: ActionMarkComplete}
		if t.Completed {
			row.Struck = true
			row.Toggle = ActionMarkIncomplete
		}
		row.Deletable = mode == model.FilterCompleted
		rows = append(rows, row)
	}
	return rows
}

func Heading(mode model.FilterMode) string {
	switch mode {
	case model.FilterCompleted:
		return "Completed tasks"
	case model.FilterUncompleted:
		return "Uncompleted tasks"
	default:
		return "All tasks"
	}
}

type Summary struct {
	Total     int
	Completed int
	Open      int
}

func Summarize(tasks []model.Task) Summary {
	var s Summary
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		} else {
			s.Open++
		}
	}
	return s
}

// IndexOf returns the row position of id, or -1.
func IndexOf(rows []Row, id model.TaskID) int {
	for i, r := range rows {
		if r.Task.ID == id {
			return i
		}
	}
	return -1
}
