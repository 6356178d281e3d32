package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg for gen after interval.
func TickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// WatchEngine returns a command that waits for the next engine event and
// converts it to a message. Each handled event re-arms the watch.
func (m Model) WatchEngine() tea.Cmd {
	sub := m.engineSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.TimeChanged:
			return TimeChangedMsg(e)
		case e := <-sub.EndChanged:
			return EndChangedMsg(e)
		case e := <-sub.LayoutChanged:
			return LayoutChangedMsg(e)
		case <-sub.Done:
			return EngineClosedMsg{}
		}
	}
}

// WatchTransport returns a command that waits for the next transport event.
func (m Model) WatchTransport() tea.Cmd {
	sub := m.transportSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return TransportStateMsg(e)
		case e := <-sub.Wrapped:
			return TransportWrappedMsg(e)
		case e := <-sub.Error:
			return TransportErrorMsg(e)
		case <-sub.Done:
			return TransportClosedMsg{}
		}
	}
}
