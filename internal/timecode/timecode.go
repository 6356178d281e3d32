// Package timecode converts timeline time values to and from
// HH:MM:SS:FF labels.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 24

// ErrInvalid is returned by Parse for malformed input.
var ErrInvalid = errors.New("invalid timecode")

// Unit is the time unit of timeline values.
type Unit int

const (
	Frames Unit = iota
	Seconds
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Frames:
		return "frames"
	case Seconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// ParseUnit parses "frames" or "seconds". Empty means frames.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frames", "frame":
		return Frames, nil
	case "seconds", "second", "s":
		return Seconds, nil
	}
	return Frames, fmt.Errorf("unknown time unit %q", s)
}

// Formatter formats and parses time values of a given unit.
type Formatter struct {
	Unit Unit
	FPS  int
}

// New returns a formatter; a non-positive fps falls back to DefaultFPS.
func New(unit Unit, fps int) Formatter {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Formatter{Unit: unit, FPS: fps}
}

func (f Formatter) fps() int {
	if f.FPS <= 0 {
		return DefaultFPS
	}
	return f.FPS
}

// FramesPerUnit returns how many frames one time unit spans.
func (f Formatter) FramesPerUnit() float64 {
	if f.Unit == Seconds {
		return float64(f.fps())
	}
	return 1
}

// Format renders t (in the formatter's unit) as HH:MM:SS:FF.
func (f Formatter) Format(t float64) string {
	return FromFrames(t*f.FramesPerUnit(), f.fps())
}

// Parse reads a timecode ("HH:MM:SS:FF", "MM:SS:FF", "SS:FF") or a plain
// number of time units, returning time units.
func (f Formatter) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalid
	}
	if !strings.Contains(s, ":") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		return v, nil
	}
	frames, err := ToFrames(s, f.fps())
	if err != nil {
		return 0, err
	}
	return float64(frames) / f.FramesPerUnit(), nil
}

// FromFrames renders a frame count as HH:MM:SS:FF. Negative values render
// as zero.
func FromFrames(frames float64, fps int) string {
	if fps <= 0 {
		fps = DefaultFPS
	}
	n := int64(math.Round(frames))
	if n < 0 {
		n = 0
	}
	f := int64(fps)
	seconds := n / f
	rem := n % f
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, rem)
}

// ToFrames parses a colon-separated timecode into a frame count. Fields are
// right-aligned: "12" is frames, "1:12" seconds and frames, and so on.
func ToFrames(s string, fps int) (int64, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	values := make([]int64, 4)
	offset := 4 - len(parts)
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		values[offset+i] = v
	}
	hours, minutes, secs, frames := values[0], values[1], values[2], values[3]
	if len(parts) > 1 && frames >= int64(fps) {
		return 0, fmt.Errorf("%w: frame field %d exceeds fps %d", ErrInvalid, frames, fps)
	}
	if len(parts) > 2 && secs >= 60 {
		return 0, fmt.Errorf("%w: seconds field %d", ErrInvalid, secs)
	}
	if len(parts) > 3 && minutes >= 60 {
		return 0, fmt.Errorf("%w: minutes field %d", ErrInvalid, minutes)
	}
	total := ((hours*60+minutes)*60+secs)*int64(fps) + frames
	return total, nil
}
