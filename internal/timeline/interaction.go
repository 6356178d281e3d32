package timeline

import "go.uber.org/zap"

// InteractionState is the pointer-routing state.
type InteractionState int

const (
	StateIdle InteractionState = iota
	StateDraggingClip
	StateDraggingPlayhead
	StateDraggingEndMarker
	StateDraggingZoomSlider
)

// String returns the state name.
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDraggingClip:
		return "DraggingClip"
	case StateDraggingPlayhead:
		return "DraggingPlayhead"
	case StateDraggingEndMarker:
		return "DraggingEndMarker"
	case StateDraggingZoomSlider:
		return "DraggingZoomSlider"
	default:
		return "Unknown"
	}
}

// Dirty is a set of elements that need re-layout after an event.
type Dirty uint8

const (
	DirtyClip Dirty = 1 << iota
	DirtyPlayhead
	DirtyEndMarker
	DirtyAll

	DirtyNone Dirty = 0
)

// Has reports whether any bit of f is set.
func (d Dirty) Has(f Dirty) bool {
	return d&f != 0
}

// Drag is the gesture in progress.
type Drag struct {
	State      InteractionState
	ClipID     string
	TrackID    string
	GrabOffset float64 // pointer x minus the grabbed element's x, in pixels
	Axis       Axis
	Extent     float64
	Snap       SnapResult // last snap applied to the dragged clip
}

// Interaction returns the gesture in progress.
func (e *Engine) Interaction() Drag {
	return e.drag
}

// PointerDown starts a gesture on target at content-space x (slider-local x
// for zoom sliders). A press while another gesture is active restarts the
// gesture on the new target.
func (e *Engine) PointerDown(t Target, x, y float64) Dirty {
	e.drag = Drag{}
	mp := e.Mapper()

	var d Dirty
	switch t.Kind {
	case TargetClip:
		ti, ci, ok := e.model.findClip(t.ClipID)
		if !ok {
			return DirtyNone
		}
		c := e.model.clip(ti, ci)
		e.drag = Drag{
			State:      StateDraggingClip,
			ClipID:     c.ID,
			TrackID:    e.model.tracks[ti].ID,
			GrabOffset: x - mp.TimeToX(c.Start),
		}
		d = e.selectClip(c.ID)

	case TargetPlayheadGrip, TargetPlayheadLine:
		e.drag = Drag{
			State:      StateDraggingPlayhead,
			GrabOffset: x - mp.TimeToX(e.playhead.Time()),
		}

	case TargetRuler:
		// A ruler press jumps the playhead under the pointer and keeps dragging it.
		e.drag = Drag{State: StateDraggingPlayhead}
		d = e.setPlayhead(mp.XToTime(x))

	case TargetEndMarker:
		e.drag = Drag{
			State:      StateDraggingEndMarker,
			GrabOffset: x - mp.TimeToX(e.end.Time()),
		}

	case TargetZoomSlider:
		if t.Extent <= 0 {
			return DirtyNone
		}
		e.drag = Drag{State: StateDraggingZoomSlider, Axis: t.Axis, Extent: t.Extent}
		d = e.applySlider(x)

	case TargetLane, TargetNone:
		d = e.selectClip("")
	}

	if e.drag.State != StateIdle {
		e.log.Debug("drag started",
			zap.Stringer("state", e.drag.State),
			zap.String("clip", e.drag.ClipID))
	}
	e.emitLayout(d)
	return d
}

// PointerMove updates the active gesture. Clip drags ignore y: a drag never
// changes a clip's track.
func (e *Engine) PointerMove(x, _ float64) Dirty {
	if !finite(x) {
		return DirtyNone
	}
	mp := e.Mapper()

	var d Dirty
	switch e.drag.State {
	case StateDraggingClip:
		d = e.moveDraggedClip(mp, x)
	case StateDraggingPlayhead:
		d = e.setPlayhead(mp.XToTime(x - e.drag.GrabOffset))
	case StateDraggingEndMarker:
		d = e.dragEnd(mp.XToTime(x - e.drag.GrabOffset))
	case StateDraggingZoomSlider:
		d = e.applySlider(x)
	case StateIdle:
	}
	e.emitLayout(d)
	return d
}

// PointerUp ends the gesture. Every intermediate value was already valid,
// so the last one stands.
func (e *Engine) PointerUp() {
	if e.drag.State != StateIdle {
		e.log.Debug("drag ended",
			zap.Stringer("state", e.drag.State),
			zap.Float64("time", e.playhead.Time()),
			zap.Float64("end", e.end.Time()))
	}
	e.drag = Drag{}
}

func (e *Engine) moveDraggedClip(mp Mapper, x float64) Dirty {
	ti, ci, ok := e.model.findClip(e.drag.ClipID)
	if !ok {
		e.drag = Drag{}
		return DirtyNone
	}
	c := e.model.clip(ti, ci)
	res := NewSnapper(mp, e.theme.Metrics.SnapTolerance).Snap(SnapRequest{
		Tentative:  mp.XToTime(x - e.drag.GrabOffset),
		Duration:   c.Duration,
		Candidates: snapCandidates(e.model.tracks[ti], c.ID, e.end.Time()),
	})
	e.drag.Snap = res
	if res.Start == c.Start {
		return DirtyNone
	}
	c.Start = res.Start
	return DirtyClip | e.advanceEnd()
}

func (e *Engine) applySlider(x float64) Dirty {
	z := SliderToZoom(e.drag.Axis, sliderValueAt(x, e.drag.Extent))
	h, v := e.hZoom, e.vZoom
	if e.drag.Axis == AxisVertical {
		v = z
	} else {
		h = z
	}
	if h == e.hZoom && v == e.vZoom {
		return DirtyNone
	}
	e.hZoom, e.vZoom = h, v
	return DirtyAll
}

func (e *Engine) selectClip(id string) Dirty {
	if e.selected == id {
		return DirtyNone
	}
	e.selected = id
	return DirtyAll
}
