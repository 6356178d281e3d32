package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/app/popupctl"
)

// handleMouseMsg routes mouse events. A drag stays with the component it
// started in; other events go to the region under the pointer.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.ActivePopup() != popupctl.None {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.ErrorMsg = ""
	}

	var cmd tea.Cmd
	switch {
	case m.Toolbar.Dragging():
		m.Toolbar, cmd = m.Toolbar.Update(msg)
	case m.Timeline.Dragging():
		m.Timeline, cmd = m.Timeline.Update(msg)
	case m.Layout.InToolbar(msg.Y):
		m.Toolbar, cmd = m.Toolbar.Update(msg)
	case m.Layout.InTimeline(msg.Y):
		m.Timeline, cmd = m.Timeline.Update(msg)
	}
	return m, cmd
}
