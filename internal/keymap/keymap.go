// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "transport", "view", "clip"
}

// Bindings contains all key bindings, used for dispatch and help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSeekInput, []string{":", "t"}, "Type a time to seek", "global"},

	// Transport
	{ActionPlayStop, []string{" "}, "Play/stop", "transport"},
	{ActionStepBack, []string{"left", "h"}, "Step back one frame", "transport"},
	{ActionStepForward, []string{"right", "l"}, "Step forward one frame", "transport"},
	{ActionStepBackLong, []string{"shift+left", "H"}, "Step back one second", "transport"},
	{ActionStepForwardLong, []string{"shift+right", "L"}, "Step forward one second", "transport"},
	{ActionJumpStart, []string{"home", "0"}, "Jump to start", "transport"},
	{ActionJumpEnd, []string{"end", "$"}, "Jump to end marker", "transport"},

	// View
	{ActionZoomIn, []string{"+", "="}, "Zoom in", "view"},
	{ActionZoomOut, []string{"-"}, "Zoom out", "view"},
	{ActionZoomInLanes, []string{"}"}, "Taller lanes", "view"},
	{ActionZoomOutLanes, []string{"{"}, "Shorter lanes", "view"},
	{ActionZoomReset, []string{"z"}, "Reset zoom", "view"},
	{ActionScrollLeft, []string{"ctrl+left"}, "Scroll left", "view"},
	{ActionScrollRight, []string{"ctrl+right"}, "Scroll right", "view"},
	{ActionScrollUp, []string{"up", "k"}, "Scroll up", "view"},
	{ActionScrollDown, []string{"down", "j"}, "Scroll down", "view"},
	{ActionFollow, []string{"f"}, "Follow playhead on/off", "view"},

	// Clip
	{ActionSelectNext, []string{"tab"}, "Select next clip", "clip"},
	{ActionSelectPrev, []string{"shift+tab"}, "Select previous clip", "clip"},
	{ActionClearSelect, []string{"esc"}, "Clear selection", "clip"},
	{ActionNudgeLeft, []string{"["}, "Nudge clip earlier", "clip"},
	{ActionNudgeRight, []string{"]"}, "Nudge clip later", "clip"},
	{ActionDelete, []string{"d", "delete"}, "Delete selected clip", "clip"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
