// Package seekinput provides the "go to time" popup: a single text field
// accepting a timecode or a plain number of time units.
package seekinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/timecode"
	"github.com/llehouerou/cutline/internal/ui"
	"github.com/llehouerou/cutline/internal/ui/popup"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	title    = "Go to time"
	hint     = "Enter: seek · Esc: cancel"
	maxInput = 16
)

// Model is the seek popup.
type Model struct {
	ui.Base
	labels timecode.Formatter
	input  textinput.Model
	err    error
}

// New creates the popup prefilled with current, formatted by labels.
func New(labels timecode.Formatter, current float64) *Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM:SS:FF"
	ti.Prompt = "> "
	ti.CharLimit = maxInput
	ti.Width = maxInput
	ti.SetValue(labels.Format(current))
	ti.CursorEnd()
	ti.Focus()
	return &Model{labels: labels, input: ti}
}

// Value returns the text typed so far.
func (m *Model) Value() string { return m.input.Value() }

// Err returns the last parse error, cleared by the next edit.
func (m *Model) Err() error { return m.err }

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return ActionMsg(Cancel{}) }
		case "enter":
			t, err := m.labels.Parse(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg { return ActionMsg(Seek{Time: t}) }
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.err = nil
	}
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	body := m.input.View()
	if m.err != nil {
		body += "\n" + styles.T().S().Error.Render(m.err.Error())
	}
	return popup.Frame(title, body, hint)
}
