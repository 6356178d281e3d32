package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal components drawn over the timeline.
// While a popup is open it receives every key.
type Popup interface {
	// Init returns any initial command (e.g., cursor blink).
	Init() tea.Cmd

	// Update handles messages and returns the updated popup and a command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content without its frame.
	View() string

	// SetSize sets the space available to the popup content.
	SetSize(width, height int)
}
