// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionSeekInput Action = "seek_input" // focus the time label for typed seeks

	// Transport actions
	ActionPlayStop        Action = "play_stop"
	ActionStepBack        Action = "step_back"
	ActionStepForward     Action = "step_forward"
	ActionStepBackLong    Action = "step_back_long"
	ActionStepForwardLong Action = "step_forward_long"
	ActionJumpStart       Action = "jump_start"
	ActionJumpEnd         Action = "jump_end"

	// View actions
	ActionZoomIn       Action = "zoom_in"
	ActionZoomOut      Action = "zoom_out"
	ActionZoomInLanes  Action = "zoom_in_lanes"
	ActionZoomOutLanes Action = "zoom_out_lanes"
	ActionZoomReset    Action = "zoom_reset"
	ActionScrollLeft   Action = "scroll_left"
	ActionScrollRight  Action = "scroll_right"
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionFollow       Action = "follow" // keep the playhead in view while it moves

	// Clip actions
	ActionSelectNext  Action = "select_next"
	ActionSelectPrev  Action = "select_prev"
	ActionClearSelect Action = "clear_select"
	ActionNudgeLeft   Action = "nudge_left"  // move selected clip one unit earlier
	ActionNudgeRight  Action = "nudge_right" // move selected clip one unit later
	ActionDelete      Action = "delete"
)
