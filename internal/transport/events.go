package transport

// StateChange is emitted when the transport starts or stops.
type StateChange struct {
	Previous State
	Current  State
}

// Wrapped is emitted when playback reaches the end marker and loops back
// to zero.
type Wrapped struct {
	End float64 // end-marker time that was reached
}

// ErrorEvent is emitted when a tick could not move the playhead.
type ErrorEvent struct {
	Operation string
	Err       error
}
