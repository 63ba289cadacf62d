package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit       key.Binding
	SwitchFocus  key.Binding
	Blur         key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	ShowAll      key.Binding
	ShowDone     key.Binding
	ShowOpen     key.Binding
	Copy         key.Binding
	Palette      key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	FocusCapture key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		SwitchFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch input/list")),
		Blur:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "mark complete/incomplete")),
		Delete:       key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete (completed view)")),
		ShowAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "show all")),
		ShowDone:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "show completed")),
		ShowOpen:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "show uncompleted")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy visible as json")),
		Palette:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		FocusCapture: key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i", "focus input")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Toggle, k.Delete, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchFocus, k.Blur, k.FocusCapture},
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.ShowAll, k.ShowDone, k.ShowOpen},
		{k.Copy, k.Palette, k.Help, k.Quit},
	}
}
