package seekinput

import (
	"github.com/llehouerou/cutline/internal/ui/action"
)

// Seek asks the app to move the playhead to Time.
type Seek struct {
	Time float64
}

// ActionType implements action.Action.
func (a Seek) ActionType() string { return "seekinput.seek" }

// Cancel reports that the popup was dismissed without seeking.
type Cancel struct{}

// ActionType implements action.Action.
func (a Cancel) ActionType() string { return "seekinput.cancel" }

// ActionMsg creates an action.Msg for a seekinput action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "seekinput", Action: a}
}
