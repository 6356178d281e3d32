package app

import (
	"strings"

	"github.com/llehouerou/cutline/internal/ui/render"
	"github.com/llehouerou/cutline/internal/ui/statusbar"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

const tooSmall = "window too small"

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	if !m.Layout.Usable() {
		return m.renderTooSmall()
	}

	view := strings.Join([]string{
		m.Toolbar.View(),
		m.Timeline.View(),
		statusbar.Render(m.statusState(), m.Width),
	}, "\n")
	return m.Popups.RenderOverlay(view)
}

func (m Model) statusState() statusbar.State {
	h, v := m.Engine.Zoom()
	s := statusbar.State{
		Playing: m.Transport.IsPlaying(),
		Loop:    m.Transport.Loop(),
		Follow:  m.Timeline.Follow(),
		Time:    m.Engine.CurrentTime(),
		End:     m.Engine.EndMarkerTime(),
		Floor:   m.Engine.EndFloor(),
		Labels:  m.Engine.Labels(),
		Tracks:  m.Engine.TrackCount(),
		Clips:   m.Engine.ClipCount(),
		HZoom:   h,
		VZoom:   v,
		Error:   m.ErrorMsg,
	}
	if c, trackID, ok := m.Engine.Clip(m.Engine.Selected()); ok {
		s.Selection = &statusbar.Selection{Name: c.Name, Start: c.Start, End: c.End()}
		if tr, ok := m.Engine.Track(trackID); ok {
			s.Selection.Track = tr.Name
		}
	}
	return s
}

func (m Model) renderTooSmall() string {
	lines := make([]string, m.Height)
	for i := range lines {
		lines[i] = render.EmptyLine(m.Width)
	}
	lines[m.Height/2] = styles.T().S().Muted.Render(render.Center(tooSmall, m.Width))
	return strings.Join(lines, "\n")
}
