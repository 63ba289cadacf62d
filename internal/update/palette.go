package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, _, err := m.addTask(a.Text)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added #%d: %s", task.ID, task.Text)}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			ok, err := m.toggleTask(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				return commands.Result{Message: fmt.Sprintf("no task #%d", a.ID)}, nil
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			_, found, err := m.Store.Get(opContext(), a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			if !found {
				return commands.Result{Message: fmt.Sprintf("no task #%d", a.ID)}, nil
			}
			ok, err := m.deleteTask(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				return commands.Result{Message: deleteUnavailable}, nil
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			if err := m.Filter.Set(a.Mode); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.afterFilterChange()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Copy: func() (commands.Result, error) {
			n, err := m.copyVisible()
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("copied %d task(s)", n)}, nil
		},
	})
	if err != nil {
		m.setError(err)
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.closePalette()
	return m
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
