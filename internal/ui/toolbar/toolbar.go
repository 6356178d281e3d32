// Package toolbar renders the transport buttons and zoom sliders above the
// timeline and turns clicks on them into actions and engine pointer events.
package toolbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/ui"
	"github.com/llehouerou/cutline/internal/ui/action"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

const (
	labelPlay     = "▶ Play"
	labelStop     = "■ Stop"
	labelStepBack = "◀|"
	labelStepFwd  = "|▶"
	title         = "cutline"
)

type controlKind int

const (
	controlNone controlKind = iota
	controlPlay
	controlStepBack
	controlStepForward
	controlHSlider
	controlVSlider
)

// control is a clickable span of columns [x0, x1).
type control struct {
	kind   controlKind
	x0, x1 int
}

func (c control) width() int { return c.x1 - c.x0 }

// Model is the one-row toolbar.
type Model struct {
	ui.Base
	engine  *timeline.Engine
	playing bool

	dragging  bool
	dragStart int // first column of the slider being dragged
}

// New creates a toolbar driving e's zoom sliders.
func New(e *timeline.Engine) Model {
	return Model{engine: e}
}

// SetPlaying switches the play button label.
func (m *Model) SetPlaying(playing bool) {
	m.playing = playing
}

// Dragging reports whether a slider drag is in progress.
func (m Model) Dragging() bool { return m.dragging }

// controls lays the toolbar out left to right. Sliders share what the
// buttons and the title leave, within the configured bounds.
func (m Model) controls() []control {
	btn := func(label string) int { return lipgloss.Width(label) + 2 }

	x := 1
	var out []control
	add := func(kind controlKind, w int) {
		out = append(out, control{kind: kind, x0: x, x1: x + w})
		x += w + 1
	}
	add(controlPlay, btn(labelPlay))
	add(controlStepBack, btn(labelStepBack))
	add(controlStepForward, btn(labelStepFwd))

	// "H " and "V " prefixes, gaps, and the title on the right.
	rest := m.Width() - x - 2*3 - len(title) - 2
	sw := min(max(rest/2, ui.MinSliderWidth), ui.MaxSliderWidth)
	x += 3
	add(controlHSlider, sw)
	x += 3
	add(controlVSlider, sw)
	return out
}

func (m Model) controlAt(col int) control {
	for _, c := range m.controls() {
		if col >= c.x0 && col < c.x1 {
			return c
		}
	}
	return control{}
}

func axisOf(k controlKind) timeline.Axis {
	if k == controlVSlider {
		return timeline.AxisVertical
	}
	return timeline.AxisHorizontal
}

// Update handles mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	col, _ := m.Local(mouse.X, mouse.Y)

	switch mouse.Action { //nolint:exhaustive // wheel events are ignored
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !m.Contains(mouse.X, mouse.Y) {
			return m, nil
		}
		return m.press(col)
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		d := m.engine.PointerMove(float64(col-m.dragStart)+0.5, 0)
		return m, zoomCmd(d)
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.engine.PointerUp()
	}
	return m, nil
}

func (m Model) press(col int) (Model, tea.Cmd) {
	c := m.controlAt(col)
	switch c.kind {
	case controlPlay:
		return m, actionCmd(TogglePlay{})
	case controlStepBack:
		return m, actionCmd(StepFrames{Frames: -1})
	case controlStepForward:
		return m, actionCmd(StepFrames{Frames: 1})
	case controlHSlider, controlVSlider:
		target := timeline.Target{
			Kind:   timeline.TargetZoomSlider,
			Axis:   axisOf(c.kind),
			Extent: float64(c.width()),
		}
		m.dragging = true
		m.dragStart = c.x0
		d := m.engine.PointerDown(target, float64(col-c.x0)+0.5, 0)
		return m, zoomCmd(d)
	case controlNone:
	}
	return m, nil
}

func actionCmd(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}

func zoomCmd(d timeline.Dirty) tea.Cmd {
	if d == timeline.DirtyNone {
		return nil
	}
	return actionCmd(ZoomChanged{})
}

// View renders the toolbar row, exactly Width cells wide.
func (m Model) View() string {
	if m.Width() <= 0 {
		return ""
	}
	t := styles.T()
	h, v := m.engine.Zoom()

	var b strings.Builder
	x := 0
	pad := func(to int) {
		if to > x {
			b.WriteString(strings.Repeat(" ", to-x))
			x = to
		}
	}
	for _, c := range m.controls() {
		switch c.kind {
		case controlPlay:
			pad(c.x0)
			label, st := labelPlay, t.S().Button
			if m.playing {
				label, st = labelStop, t.S().ButtonActive
			}
			b.WriteString(st.Render(label))
		case controlStepBack:
			pad(c.x0)
			b.WriteString(t.S().Button.Render(labelStepBack))
		case controlStepForward:
			pad(c.x0)
			b.WriteString(t.S().Button.Render(labelStepFwd))
		case controlHSlider:
			pad(c.x0 - 2)
			b.WriteString(t.S().Muted.Render("H "))
			b.WriteString(slider(c.width(), timeline.ZoomToSlider(timeline.AxisHorizontal, h)))
		case controlVSlider:
			pad(c.x0 - 2)
			b.WriteString(t.S().Muted.Render("V "))
			b.WriteString(slider(c.width(), timeline.ZoomToSlider(timeline.AxisVertical, v)))
		case controlNone:
		}
		x = c.x1
	}

	row := b.String()
	name := styles.ApplyBoldGradient(title, t.Primary, t.ClipSelected)
	if used := lipgloss.Width(row); used+len(title)+2 <= m.Width() {
		row += strings.Repeat(" ", m.Width()-used-len(title)-1) + name + " "
	}
	return lipgloss.NewStyle().MaxWidth(m.Width()).Render(row + strings.Repeat(" ", max(m.Width()-lipgloss.Width(row), 0)))
}

// KnobIndex returns the cell holding the knob of a slider n cells wide at
// value, matching the engine's cell-to-value mapping.
func KnobIndex(n int, value float64) int {
	if n <= 0 {
		return 0
	}
	f := (value - timeline.SliderMin) / (timeline.SliderMax - timeline.SliderMin)
	return min(max(int(f*float64(n)), 0), n-1)
}

func slider(n int, value float64) string {
	t := styles.T()
	k := KnobIndex(n, value)
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("━", k)+"●") +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("─", n-k-1))
}
