// Package popupctl owns the modal popups drawn over the timeline.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/timecode"
	"github.com/llehouerou/cutline/internal/ui/helpbindings"
	"github.com/llehouerou/cutline/internal/ui/popup"
	"github.com/llehouerou/cutline/internal/ui/seekinput"
)

// Manager manages all modal popups.
type Manager struct {
	popups map[Type]popup.Popup
	width  int
	height int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the space popups may use and resizes the open ones.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type and returns its init command.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp displays the key binding help.
func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New()
	return p.Show(Help, &help)
}

// ShowSeek opens the go-to-time input prefilled with current.
func (p *Manager) ShowSeek(labels timecode.Formatter, current float64) tea.Cmd {
	return p.Show(Seek, seekinput.New(labels, current))
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	return p.Update(msg)
}

// Update forwards any message to the active popup, such as the input's
// cursor blink. handled is false when no popup is open.
func (p *Manager) Update(msg tea.Msg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders the open popups centred over base.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if pop := p.popups[t]; pop != nil {
			base = popup.Overlay(base, pop.View(), p.width, p.height)
		}
	}
	return base
}
