package update

import (
	"github.com/sandeepkv93/todo/internal/views"
)

const helpMarkdown = `**Filters** never change tasks. Delete is offered only in the
*completed* view.

Palette: ` + "`add <text>`, `toggle <id>`, `delete <id>`, `show <filter>`, `copy`"

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		HelpView: m.helpModel.View(m.Keys),
		Notes:    m.helpNotes,
	})
}
