package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/projection"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(typed, m.Keys.ForceQuit) {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Focus == FocusInput {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case AddTaskMsg:
		_, _, err := m.addTask(typed.Text)
		m.setError(err)
		return m, nil
	case ToggleTaskMsg:
		_, err := m.toggleTask(typed.ID)
		m.setError(err)
		return m, nil
	case DeleteTaskMsg:
		_, err := m.deleteTask(typed.ID)
		m.setError(err)
		return m, nil
	case SetFilterMsg:
		if err := m.Filter.Set(typed.Mode); err != nil {
			m.setError(err)
			return m, nil
		}
		m.afterFilterChange()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.setError(typed.Err)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	tasks := m.tasks()
	mode := m.Filter.Mode()
	rows := projection.Project(tasks, mode)
	summary := projection.Summarize(tasks)

	main := views.RenderTaskPanel(views.TaskPanelData{
		Heading:   projection.Heading(mode),
		InputView: m.addInput.View(),
		Rows:      m.rowData(rows),
		ListFocus: m.Focus == FocusList,
	})
	main += "\n\n" + m.renderFilterBar()
	main += "\n" + views.RenderSummary(views.SummaryData{
		Total:     summary.Total,
		Completed: summary.Completed,
		Open:      summary.Open,
	})

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | filter: %s | focus: %s", mode, m.Focus),
		MainPane:   main,
		SidePane:   joinNonEmpty(m.renderCommandPalette(), m.renderHelpIfVisible()),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.footer(),
	})
}

func (m Model) footer() string {
	if m.Focus == FocusInput {
		return "keys: enter add | tab list | ctrl+c quit"
	}
	return "keys: space toggle | d delete | 1/2/3 filter | tab input | / cmd | ? help | q quit"
}
