// Package timelineview draws the timeline engine's geometry into terminal
// cells and routes mouse gestures back to the engine.
package timelineview

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/ui"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

// wheelZoomFactor is the horizontal zoom step of ctrl+wheel.
const wheelZoomFactor = 1.25

// Model is the scrolling timeline viewport.
type Model struct {
	ui.Base
	engine *timeline.Engine
	geom   timeline.Geometry
	err    error

	scrollCol int
	scrollRow int
	follow    bool
	pressed   bool
}

// New creates a view over e and computes its first layout.
func New(e *timeline.Engine) Model {
	m := Model{engine: e, follow: true}
	m.Refresh()
	return m
}

// Refresh recomputes the geometry from the engine. A failed layout keeps the
// previous geometry and is reported by Err.
func (m *Model) Refresh() {
	g, err := m.engine.Layout()
	m.err = err
	if err != nil {
		return
	}
	m.geom = g
	m.clampScroll()
}

// Geometry returns the last computed layout.
func (m Model) Geometry() timeline.Geometry { return m.geom }

// Err returns the error of the last Refresh.
func (m Model) Err() error { return m.err }

// SetSize sets the viewport size in cells.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.clampScroll()
}

// ScrollOffset returns the hidden content columns and lane rows.
func (m Model) ScrollOffset() (col, row int) { return m.scrollCol, m.scrollRow }

// Scroll moves the viewport by whole cells, clamped to the content.
func (m *Model) Scroll(dCols, dRows int) {
	m.scrollCol += dCols
	m.scrollRow += dRows
	m.clampScroll()
}

// ScrollHome shows time zero.
func (m *Model) ScrollHome() {
	m.scrollCol = 0
	m.clampScroll()
}

// Follow reports whether the viewport tracks the playhead.
func (m Model) Follow() bool { return m.follow }

// SetFollow turns playhead tracking on or off.
func (m *Model) SetFollow(on bool) {
	m.follow = on
	if on {
		m.FollowPlayhead()
	}
}

// FollowPlayhead scrolls the least needed to bring the playhead into view,
// if tracking is on.
func (m *Model) FollowPlayhead() {
	if !m.follow {
		return
	}
	m.EnsureVisible(m.geom.Playhead.X)
}

// EnsureVisible scrolls horizontally so content-space x is on screen.
func (m *Model) EnsureVisible(x float64) {
	visible := m.visibleCols()
	if visible <= 0 {
		return
	}
	c := int(math.Floor(x / ui.ColumnPixels))
	switch {
	case c < m.scrollCol:
		m.scrollCol = c
	case c >= m.scrollCol+visible:
		m.scrollCol = c - visible + 1
	}
	m.clampScroll()
}

func (m Model) projection() projection {
	return newProjection(m.engine.Theme().Metrics, m.scrollCol, m.scrollRow)
}

func (m Model) visibleCols() int {
	return m.Width() - m.projection().headerCols
}

func (m *Model) clampScroll() {
	p := m.projection()
	contentCols := cellsFor(m.geom.ContentWidth, ui.ColumnPixels)
	maxCol := max(contentCols-(m.Width()-p.headerCols), 0)
	sceneRows := cellsFor(m.geom.SceneHeight, ui.RowPixels)
	maxRow := max(sceneRows-m.Height(), 0)
	m.scrollCol = min(max(m.scrollCol, 0), maxCol)
	m.scrollRow = min(max(m.scrollRow, 0), maxRow)
}

// ScenePoint converts a view-local cell to content-space x and scene y. ok
// is false for cells in the pinned header column.
func (m Model) ScenePoint(col, row int) (x, y float64, ok bool) {
	p := m.projection()
	return p.contentX(col), p.sceneY(row), !p.inHeader(col)
}

// TargetAt resolves the element under a view-local cell.
func (m Model) TargetAt(col, row int) timeline.Target {
	x, y, ok := m.ScenePoint(col, row)
	if !ok {
		return timeline.Target{}
	}
	tol := max(m.engine.Theme().Metrics.HandleTolerance, ui.ColumnPixels/2)
	return timeline.HitTest(m.geom, x, y, tol)
}

// Update handles mouse input. Presses, motion and releases become engine
// pointer events; the wheel scrolls, and ctrl+wheel zooms horizontally.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	col, row := m.Local(mouse.X, mouse.Y)

	switch mouse.Button { //nolint:exhaustive // only wheel buttons scroll
	case tea.MouseButtonWheelUp:
		if mouse.Ctrl {
			return m.zoomBy(wheelZoomFactor)
		}
		if mouse.Shift {
			m.Scroll(-ui.ScrollStep, 0)
		} else {
			m.Scroll(0, -1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if mouse.Ctrl {
			return m.zoomBy(1 / wheelZoomFactor)
		}
		if mouse.Shift {
			m.Scroll(ui.ScrollStep, 0)
		} else {
			m.Scroll(0, 1)
		}
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.Scroll(-ui.ScrollStep, 0)
		return m, nil
	case tea.MouseButtonWheelRight:
		m.Scroll(ui.ScrollStep, 0)
		return m, nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !m.Contains(mouse.X, mouse.Y) {
			return m, nil
		}
		x, y, _ := m.ScenePoint(col, row)
		m.pressed = true
		m.apply(m.engine.PointerDown(m.TargetAt(col, row), x, y))
	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		x, y, _ := m.ScenePoint(col, row)
		m.apply(m.engine.PointerMove(x, y))
	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		m.engine.PointerUp()
		m.Refresh()
	}
	return m, nil
}

// Dragging reports whether a gesture started in this view is in progress.
func (m Model) Dragging() bool { return m.pressed }

func (m *Model) apply(d timeline.Dirty) {
	if d == timeline.DirtyNone {
		return
	}
	m.Refresh()
}

func (m Model) zoomBy(factor float64) (Model, tea.Cmd) {
	_ = m.ZoomBy(factor, 1) // factors are clamped and finite
	return m, nil
}

// ZoomBy multiplies the zoom factors, clamped to the slider ranges, then
// refreshes and keeps the playhead in view. A factor of 1 leaves that axis
// alone.
func (m *Model) ZoomBy(hFactor, vFactor float64) error {
	h, v := m.engine.Zoom()
	if err := m.engine.SetZoom(clampZoom(timeline.AxisHorizontal, h*hFactor), clampZoom(timeline.AxisVertical, v*vFactor)); err != nil {
		return err
	}
	m.Refresh()
	m.FollowPlayhead()
	return nil
}

func clampZoom(axis timeline.Axis, z float64) float64 {
	lo := timeline.SliderToZoom(axis, timeline.SliderMin)
	hi := timeline.SliderToZoom(axis, timeline.SliderMax)
	return min(max(z, lo), hi)
}

// View renders the viewport.
func (m Model) View() string {
	return m.canvas().render()
}

func (m Model) canvas() *canvas {
	s := scene{
		geom: m.geom,
		pal:  styles.T(),
		proj: m.projection(),
	}
	if d := m.engine.Interaction(); d.State == timeline.StateDraggingClip && d.Snap.Snapped {
		s.snap = true
		s.snapX = m.engine.Mapper().TimeToX(d.Snap.Target)
	}
	return paint(s, m.Width(), m.Height())
}
