package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/app/handler"
	"github.com/llehouerou/cutline/internal/errmsg"
	"github.com/llehouerou/cutline/internal/keymap"
	"github.com/llehouerou/cutline/internal/ui"
)

// Keyboard zoom steps.
const (
	zoomStep     = 1.25
	laneZoomStep = 1.25
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	m.ErrorMsg = ""
	a := m.keys.Resolve(msg.String())
	_, cmd := handler.Chain(a,
		m.handleGlobalAction,
		m.handleTransportAction,
		m.handleViewAction,
		m.handleClipAction,
	)
	return m, cmd
}

func (m *Model) handleGlobalAction(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other contexts handle the rest
	case keymap.ActionQuit:
		m.Transport.Stop()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp())
	case keymap.ActionSeekInput:
		return handler.Handled(m.Popups.ShowSeek(m.Engine.Labels(), m.Engine.CurrentTime()))
	}
	return handler.NotHandled
}

// secondStep is one second of playhead movement in timeline units.
func (m *Model) secondStep() float64 {
	return float64(m.Engine.Labels().FPS) * m.Transport.Step()
}

func (m *Model) handleTransportAction(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other contexts handle the rest
	case keymap.ActionPlayStop:
		return handler.Handled(m.togglePlay())
	case keymap.ActionStepBack:
		m.Engine.Step(-m.Transport.Step())
	case keymap.ActionStepForward:
		m.Engine.Step(m.Transport.Step())
	case keymap.ActionStepBackLong:
		m.Engine.Step(-m.secondStep())
	case keymap.ActionStepForwardLong:
		m.Engine.Step(m.secondStep())
	case keymap.ActionJumpStart:
		m.seek(0)
	case keymap.ActionJumpEnd:
		m.seek(m.Engine.EndMarkerTime())
	default:
		return handler.NotHandled
	}
	m.sync()
	m.Timeline.FollowPlayhead()
	return handler.HandledNoCmd
}

func (m *Model) seek(t float64) {
	if err := m.Engine.Seek(t); err != nil {
		m.setError(errmsg.Format(errmsg.OpSeek, err))
	}
}

func (m *Model) handleViewAction(a keymap.Action) handler.Result {
	var err error
	switch a { //nolint:exhaustive // other contexts handle the rest
	case keymap.ActionZoomIn:
		err = m.Timeline.ZoomBy(zoomStep, 1)
	case keymap.ActionZoomOut:
		err = m.Timeline.ZoomBy(1/zoomStep, 1)
	case keymap.ActionZoomInLanes:
		err = m.Timeline.ZoomBy(1, laneZoomStep)
	case keymap.ActionZoomOutLanes:
		err = m.Timeline.ZoomBy(1, 1/laneZoomStep)
	case keymap.ActionZoomReset:
		err = m.Engine.SetZoom(1, 1)
		m.sync()
	case keymap.ActionScrollLeft:
		m.Timeline.Scroll(-ui.ScrollStep, 0)
	case keymap.ActionScrollRight:
		m.Timeline.Scroll(ui.ScrollStep, 0)
	case keymap.ActionScrollUp:
		m.Timeline.Scroll(0, -1)
	case keymap.ActionScrollDown:
		m.Timeline.Scroll(0, 1)
	case keymap.ActionFollow:
		m.Timeline.SetFollow(!m.Timeline.Follow())
	default:
		return handler.NotHandled
	}
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpZoom, err))
	}
	return handler.HandledNoCmd
}

func (m *Model) handleClipAction(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other contexts handle the rest
	case keymap.ActionSelectNext:
		m.Engine.SelectAdjacent(1)
		m.revealSelection()
	case keymap.ActionSelectPrev:
		m.Engine.SelectAdjacent(-1)
		m.revealSelection()
	case keymap.ActionClearSelect:
		if m.Engine.Selected() == "" {
			return handler.NotHandled
		}
		_ = m.Engine.Select("")
	case keymap.ActionNudgeLeft:
		m.nudgeSelected(-1)
	case keymap.ActionNudgeRight:
		m.nudgeSelected(1)
	case keymap.ActionDelete:
		m.deleteSelected()
	default:
		return handler.NotHandled
	}
	m.sync()
	return handler.HandledNoCmd
}

// revealSelection scrolls the selected clip's leading edge into view.
func (m *Model) revealSelection() {
	id := m.Engine.Selected()
	if id == "" {
		return
	}
	box, err := m.Engine.LayoutClip(id)
	if err != nil {
		return
	}
	m.Timeline.Refresh()
	m.Timeline.EnsureVisible(box.Rect.X)
}

// nudgeSelected moves the selected clip by dir frames, stopping at zero.
func (m *Model) nudgeSelected(dir int) {
	id := m.Engine.Selected()
	c, _, ok := m.Engine.Clip(id)
	if !ok {
		return
	}
	start := max(c.Start+float64(dir)*m.Transport.Step(), 0)
	if err := m.Engine.MoveClip(id, start); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpClipMove, c.Name, err))
	}
}

func (m *Model) deleteSelected() {
	id := m.Engine.Selected()
	c, trackID, ok := m.Engine.Clip(id)
	if !ok {
		return
	}
	if err := m.Engine.RemoveClip(trackID, id); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpClipRemove, c.Name, err))
	}
}
