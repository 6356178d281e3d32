package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/ui/popup"
)

// namedKeys are the key names Key understands besides plain runes. Each
// produces a message whose String() is the name itself.
var namedKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"esc":        tea.KeyEscape,
	"backspace":  tea.KeyBackspace,
	"delete":     tea.KeyDelete,
	"tab":        tea.KeyTab,
	"shift+tab":  tea.KeyShiftTab,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"ctrl+u":     tea.KeyCtrlU,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+left":  tea.KeyCtrlLeft,
	"ctrl+right": tea.KeyCtrlRight,
}

// Key builds the key message a terminal would deliver for name: a named key
// such as "enter" or "ctrl+u", "space", or literal runes.
func Key(name string) tea.KeyMsg {
	if name == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if k, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: k}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// PopupHarness drives a popup in tests and records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Popup returns the current popup value.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// SetSize resizes the popup.
func (h *PopupHarness) SetSize(width, height int) { h.popup.SetSize(width, height) }

// Send delivers any message and returns the popup's command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	h.record(cmd)
	return cmd
}

// Press sends each named key in turn (see Key) and returns the command of
// the last one.
func (h *PopupHarness) Press(names ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, n := range names {
		cmd = h.Send(Key(n))
	}
	return cmd
}

// Type sends text one rune at a time.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View returns the rendered popup.
func (h *PopupHarness) View() string { return h.popup.View() }

// ViewContains reports whether a line of the unstyled view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// Commands returns every non-nil command recorded so far.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// LastCommand returns the most recent recorded command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs cmd and returns its message; a nil command yields nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
