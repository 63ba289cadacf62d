package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/export"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/projection"
	"github.com/sandeepkv93/todo/internal/views"
)

const deleteUnavailable = "delete is only available in the completed view"

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.SwitchFocus), key.Matches(msg, m.Keys.FocusCapture):
		m.focusInput()
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.visibleRows())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		if row, ok := m.currentRow(); ok {
			_, err := m.toggleTask(row.Task.ID)
			m.setError(err)
		}
	case key.Matches(msg, m.Keys.Delete):
		if row, ok := m.currentRow(); ok {
			_, err := m.deleteTask(row.Task.ID)
			m.setError(err)
		}
	case key.Matches(msg, m.Keys.ShowAll):
		m.Filter.SetAll()
		m.afterFilterChange()
	case key.Matches(msg, m.Keys.ShowDone):
		m.Filter.SetCompletedOnly()
		m.afterFilterChange()
	case key.Matches(msg, m.Keys.ShowOpen):
		m.Filter.SetUncompletedOnly()
		m.afterFilterChange()
	case key.Matches(msg, m.Keys.Copy):
		_, err := m.copyVisible()
		m.setError(err)
	}
	return m, nil
}

func (m *Model) addTask(text string) (model.Task, bool, error) {
	task, ok, err := m.Store.Add(opContext(), text)
	if err != nil || !ok {
		return model.Task{}, false, err
	}
	if idx := projection.IndexOf(m.visibleRows(), task.ID); idx >= 0 {
		m.Cursor = idx
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added #%d", task.ID)}
	return task, true, nil
}

func (m *Model) toggleTask(id model.TaskID) (bool, error) {
	ok, err := m.Store.Toggle(opContext(), id)
	if err != nil || !ok {
		return false, err
	}
	task, found, err := m.Store.Get(opContext(), id)
	if err != nil {
		return true, err
	}
	if found && task.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("completed #%d", id)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened #%d", id)}
	}
	m.clampCursor()
	return true, nil
}

// deleteTask removes id only if its row currently offers the delete
// affordance.
func (m *Model) deleteTask(id model.TaskID) (bool, error) {
	rows := m.visibleRows()
	idx := projection.IndexOf(rows, id)
	if idx < 0 {
		return false, nil
	}
	if !rows[idx].Deletable {
		m.Status = StatusBar{Text: deleteUnavailable}
		return false, nil
	}
	ok, err := m.Store.Delete(opContext(), id)
	if err != nil || !ok {
		return false, err
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted #%d", id)}
	m.clampCursor()
	return true, nil
}

func (m *Model) afterFilterChange() {
	m.clampCursor()
	m.Status = StatusBar{Text: "showing " + projection.Heading(m.Filter.Mode())}
}

func (m *Model) copyVisible() (int, error) {
	snapshot := export.NewSnapshot(m.Filter.Mode(), m.visibleRows())
	n, err := export.CopyJSON(m.clipboard, snapshot)
	if err != nil {
		return 0, err
	}
	m.Status = StatusBar{Text: fmt.Sprintf("copied %d task(s)", n)}
	return n, nil
}

func (m Model) tasks() []model.Task {
	tasks, err := m.Store.List(opContext())
	if err != nil {
		m.logger.Warn("list tasks failed", "error", err)
		return nil
	}
	return tasks
}

func (m Model) visibleRows() []projection.Row {
	return projection.Project(m.tasks(), m.Filter.Mode())
}

func (m Model) currentRow() (projection.Row, bool) {
	rows := m.visibleRows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return projection.Row{}, false
	}
	return rows[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleRows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) rowData(rows []projection.Row) []views.TaskRowData {
	out := make([]views.TaskRowData, 0, len(rows))
	for i, r := range rows {
		out = append(out, views.TaskRowData{
			ID:          int64(r.Task.ID),
			Text:        r.Task.Text,
			Struck:      r.Struck,
			ToggleLabel: string(r.Toggle),
			Deletable:   r.Deletable,
			Selected:    i == m.Cursor,
		})
	}
	return out
}

func (m Model) renderFilterBar() string {
	return views.RenderFilterBar(views.FilterBarData{
		Active: string(m.Filter.Mode()),
		Modes: []views.FilterOption{
			{Key: "1", Label: "all", Mode: string(model.FilterAll)},
			{Key: "2", Label: "completed", Mode: string(model.FilterCompleted)},
			{Key: "3", Label: "uncompleted", Mode: string(model.FilterUncompleted)},
		},
	})
}

// opContext is the context for store calls made from the update loop.
// Store operations finish synchronously, so there is nothing to cancel.
func opContext() context.Context {
	return context.Background()
}
