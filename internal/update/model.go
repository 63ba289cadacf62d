package update

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/todo/internal/export"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/projection"
	"github.com/sandeepkv93/todo/internal/store"
	"github.com/sandeepkv93/todo/internal/views"
)

// Focus says which control receives plain key presses.
type Focus string

const (
	FocusInput Focus = "input"
	FocusList  Focus = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the bubbletea model. All task state lives behind Store; the
// model only keeps UI state and the filter selection.
type Model struct {
	Store       *store.Store
	Filter      projection.Selector
	Focus       Focus
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error

	logger    *slog.Logger
	clipboard export.Clipboard
	// Bubble components
	addInput     textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	helpNotes    string
}

type AddTaskMsg struct {
	Text string
}

type ToggleTaskMsg struct {
	ID model.TaskID
}

type DeleteTaskMsg struct {
	ID model.TaskID
}

type SetFilterMsg struct {
	Mode model.FilterMode
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(st *store.Store) Model {
	return NewModelWithConfig(st, DefaultRuntimeConfig(), nil, nil)
}

func NewModelWithConfig(st *store.Store, cfg RuntimeConfig, logger *slog.Logger, cb export.Clipboard) Model {
	if st == nil {
		st = store.NewMemory()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cb == nil {
		cb = export.NoopClipboard{}
	}
	m := Model{
		Store:     st,
		Filter:    projection.NewSelector(cfg.InitialFilter),
		Focus:     FocusInput,
		Keys:      DefaultKeyMap(),
		logger:    logger,
		clipboard: cb,
	}
	m.initBubbleComponents(cfg)
	return m
}

func (m *Model) initBubbleComponents(cfg RuntimeConfig) {
	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "Add a task"
	m.addInput.CharLimit = cfg.InputCharLimit
	m.addInput.Width = 42
	m.addInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
	m.helpNotes = views.RenderMarkdown(helpMarkdown)
}
