package transport

// State represents the transport state.
type State int

const (
	StateStopped State = iota
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if the playhead is advancing.
func (s State) IsActive() bool {
	return s == StatePlaying
}
