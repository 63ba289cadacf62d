package update

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		m.submitInput()
		return m, nil
	case key.Matches(msg, m.Keys.SwitchFocus), key.Matches(msg, m.Keys.Blur):
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// submitInput adds the typed text. The input is cleared only when a task
// was actually created.
func (m *Model) submitInput() {
	_, ok, err := m.addTask(m.addInput.Value())
	if err != nil {
		m.setError(err)
		return
	}
	if ok {
		m.addInput.Reset()
	}
}

func (m *Model) focusInput() {
	m.Focus = FocusInput
	m.addInput.Focus()
}

func (m *Model) focusList() {
	m.Focus = FocusList
	m.addInput.Blur()
	m.clampCursor()
}
