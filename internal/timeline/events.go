package timeline

// TimeChanged is emitted when the playhead time changes, whether by drag,
// seek, step, or a clamp caused by the end marker moving below it.
type TimeChanged struct {
	Time float64
}

// EndChanged is emitted when the end-of-timeline time changes, by drag,
// SetEndMarker, or auto-advance after a clip change.
type EndChanged struct {
	Time  float64
	Floor float64
}

// LayoutChanged is emitted after any mutation that moves geometry. Dirty
// tells a renderer which elements need re-layout.
type LayoutChanged struct {
	Dirty Dirty
}
