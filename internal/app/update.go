package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/app/popupctl"
	"github.com/llehouerou/cutline/internal/errmsg"
	"github.com/llehouerou/cutline/internal/ui/action"
	"github.com/llehouerou/cutline/internal/ui/helpbindings"
	"github.com/llehouerou/cutline/internal/ui/layout"
	"github.com/llehouerou/cutline/internal/ui/seekinput"
	"github.com/llehouerou/cutline/internal/ui/toolbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case TickMsg:
		return m.handleTick(msg)

	case EngineMessage:
		return m.handleEngineMessage(msg)

	case TransportMessage:
		return m.handleTransportMessage(msg)
	}

	// cursor blink and other component messages
	_, cmd := m.Popups.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width, m.Height = msg.Width, msg.Height
	m.Layout = layout.Compute(msg.Width, msg.Height)

	m.Toolbar.SetOrigin(0, m.Layout.ToolbarRow)
	m.Toolbar.SetSize(msg.Width, layout.ToolbarHeight)
	m.Timeline.SetOrigin(0, m.Layout.TimelineRow)
	m.Timeline.SetSize(msg.Width, m.Layout.TimelineHeight)
	m.Popups.SetSize(msg.Width, msg.Height)
	m.Timeline.FollowPlayhead()
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	more := m.Transport.Tick(msg.Gen)
	m.sync()
	m.Timeline.FollowPlayhead()
	if !more {
		return m, nil
	}
	return m, TickCmd(m.Transport.Interval(), msg.Gen)
}

// togglePlay starts or stops playback, scheduling the first tick of a new
// run.
func (m *Model) togglePlay() tea.Cmd {
	m.Transport.Toggle()
	m.sync()
	if !m.Transport.IsPlaying() {
		return nil
	}
	return TickCmd(m.Transport.Interval(), m.Transport.Generation())
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case toolbar.TogglePlay:
		return m, m.togglePlay()

	case toolbar.StepFrames:
		m.Engine.Step(float64(a.Frames) * m.Transport.Step())
		m.sync()
		m.Timeline.FollowPlayhead()

	case toolbar.ZoomChanged:
		m.sync()
		m.Timeline.FollowPlayhead()

	case seekinput.Seek:
		m.Popups.Hide(popupctl.Seek)
		if err := m.Engine.Seek(a.Time); err != nil {
			m.setError(errmsg.Format(errmsg.OpSeek, err))
			return m, nil
		}
		m.sync()
		m.Timeline.FollowPlayhead()

	case seekinput.Cancel:
		m.Popups.Hide(popupctl.Seek)

	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)

	default:
		m.log.Debug("unhandled action", zap.String("source", msg.Source), zap.String("action", a.ActionType()))
	}
	return m, nil
}

func (m Model) handleEngineMessage(msg EngineMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeChangedMsg:
		m.Timeline.Refresh()
		m.Timeline.FollowPlayhead()
	case EndChangedMsg:
		m.log.Debug("end marker changed", zap.Float64("end", msg.Time), zap.Float64("floor", msg.Floor))
		m.Timeline.Refresh()
	case LayoutChangedMsg:
		m.Timeline.Refresh()
	case EngineClosedMsg:
		return m, nil
	}
	return m, m.WatchEngine()
}

func (m Model) handleTransportMessage(msg TransportMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TransportStateMsg:
		m.log.Debug("transport state", zap.Stringer("from", msg.Previous), zap.Stringer("to", msg.Current))
		m.Toolbar.SetPlaying(msg.Current.IsActive())
	case TransportWrappedMsg:
		m.log.Debug("playback wrapped", zap.Float64("end", msg.End))
	case TransportErrorMsg:
		m.setError(errmsg.FormatWith(errmsg.OpPlayback, msg.Operation, msg.Err))
		m.sync()
	case TransportClosedMsg:
		return m, nil
	}
	return m, m.WatchTransport()
}
