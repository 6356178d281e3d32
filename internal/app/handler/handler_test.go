package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/keymap"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be empty")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without a command")
	}
	cmd := func() tea.Msg { return "test" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
}

func TestChain(t *testing.T) {
	var calls []string
	only := func(name string, want keymap.Action) Handler {
		return func(a keymap.Action) Result {
			calls = append(calls, name)
			if a != want {
				return NotHandled
			}
			return Handled(func() tea.Msg { return name })
		}
	}
	handlers := []Handler{
		only("transport", keymap.ActionPlayStop),
		only("view", keymap.ActionZoomIn),
		only("view-again", keymap.ActionZoomIn),
	}

	tests := []struct {
		name      string
		action    keymap.Action
		handled   bool
		wantMsg   any
		wantCalls int
	}{
		{"first handler", keymap.ActionPlayStop, true, "transport", 1},
		{"stops at the first match", keymap.ActionZoomIn, true, "view", 2},
		{"nobody", keymap.ActionDelete, false, nil, 3},
		{"empty action", "", false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = nil
			handled, cmd := Chain(tt.action, handlers...)
			if handled != tt.handled {
				t.Errorf("handled = %v, want %v", handled, tt.handled)
			}
			if len(calls) != tt.wantCalls {
				t.Errorf("calls = %v, want %d", calls, tt.wantCalls)
			}
			var msg any
			if cmd != nil {
				msg = cmd()
			}
			if msg != tt.wantMsg {
				t.Errorf("msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain(keymap.ActionQuit)
	if handled || cmd != nil {
		t.Error("Chain with no handlers should not handle anything")
	}
}
