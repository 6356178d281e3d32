package toolbar

import "github.com/llehouerou/cutline/internal/ui/action"

// TogglePlay requests play or stop.
type TogglePlay struct{}

// ActionType implements action.Action.
func (a TogglePlay) ActionType() string { return "toolbar.toggle_play" }

// StepFrames requests a playhead step by Frames (negative steps back).
type StepFrames struct {
	Frames int
}

// ActionType implements action.Action.
func (a StepFrames) ActionType() string { return "toolbar.step" }

// ZoomChanged reports that a slider changed the engine zoom.
type ZoomChanged struct{}

// ActionType implements action.Action.
func (a ZoomChanged) ActionType() string { return "toolbar.zoom_changed" }

// ActionMsg creates an action.Msg for a toolbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "toolbar", Action: a}
}
