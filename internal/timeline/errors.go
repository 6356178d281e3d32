package timeline

import (
	"errors"
	"fmt"
)

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrClipNotFound  = errors.New("clip not found")
)

// InvalidDataError reports a malformed clip, track or zoom value. The model
// is left unchanged.
type InvalidDataError struct {
	Op     string // operation that rejected the data, e.g. "add clip"
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Field, e.Reason)
}

// OutOfRangeError reports a programmatic time value outside its contract,
// such as a negative seek. Interactive drags clamp instead.
type OutOfRangeError struct {
	Op    string
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: time %v out of range", e.Op, e.Value)
}

func invalid(op, field, reason string) error {
	return &InvalidDataError{Op: op, Field: field, Reason: reason}
}
