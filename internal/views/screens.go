package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskRowData struct {
	ID          int64
	Text        string
	Struck      bool
	ToggleLabel string
	Deletable   bool
	Selected    bool
}

type TaskPanelData struct {
	Heading   string
	InputView string
	Rows      []TaskRowData
	ListFocus bool
}

type FilterBarData struct {
	Active string
	Modes  []FilterOption
}

type FilterOption struct {
	Key   string
	Label string
	Mode  string
}

type SummaryData struct {
	Total     int
	Completed int
	Open      int
}

type HelpPanelData struct {
	HelpView string
	Notes    string
}

var (
	struckStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	activeStyle     = lipgloss.NewStyle().Reverse(true)
	headingStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	affordanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(data.InputView + "\n\n")
	b.WriteString(headingStyle.Render(data.Heading) + "\n")
	if len(data.Rows) == 0 {
		b.WriteString("  (no tasks)")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row, data.ListFocus) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderTaskRow(row TaskRowData, listFocus bool) string {
	cursor := " "
	if row.Selected && listFocus {
		cursor = cursorStyle.Render(">")
	}
	box := "[ ]"
	text := row.Text
	if row.Struck {
		box = "[x]"
		text = struckStyle.Render(row.Text)
	}
	actions := []string{row.ToggleLabel}
	if row.Deletable {
		actions = append(actions, "delete")
	}
	return fmt.Sprintf("%s %s #%d %s  %s", cursor, box, row.ID, text,
		affordanceStyle.Render("("+strings.Join(actions, " | ")+")"))
}

func RenderFilterBar(data FilterBarData) string {
	parts := make([]string, 0, len(data.Modes))
	for _, opt := range data.Modes {
		label := fmt.Sprintf("[%s] %s", opt.Key, opt.Label)
		if opt.Mode == data.Active {
			label = activeStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return "filter: " + strings.Join(parts, "  ")
}

func RenderSummary(data SummaryData) string {
	return fmt.Sprintf("%d tasks | %d done | %d open", data.Total, data.Completed, data.Open)
}

func RenderCommandPalette(active bool, view string) string {
	if !active {
		return ""
	}
	return "command:\n" + view
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:")
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.Notes != "" {
		b.WriteString("\n\n" + data.Notes)
	}
	return b.String()
}
