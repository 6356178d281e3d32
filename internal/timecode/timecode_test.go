package timecode

import (
	"errors"
	"testing"
)

func TestFromFrames(t *testing.T) {
	tests := []struct {
		frames float64
		fps    int
		want   string
	}{
		{0, 24, "00:00:00:00"},
		{23, 24, "00:00:00:23"},
		{24, 24, "00:00:01:00"},
		{24*61 + 5, 24, "00:01:01:05"},
		{24 * 3600, 24, "01:00:00:00"},
		{10.6, 24, "00:00:00:11"},
		{-5, 24, "00:00:00:00"},
		{30, 0, "00:00:01:06"}, // falls back to 24 fps
		{60, 30, "00:00:02:00"},
	}

	for _, tt := range tests {
		got := FromFrames(tt.frames, tt.fps)
		if got != tt.want {
			t.Errorf("FromFrames(%v, %d) = %q, want %q", tt.frames, tt.fps, got, tt.want)
		}
	}
}

func TestToFrames(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "00:00:01:00", want: 24},
		{input: "01:00:00:00", want: 24 * 3600},
		{input: "1:05", want: 29},
		{input: "2:00:10", want: 2*60*24 + 10},
		{input: "7", want: 7},
		{input: "00:00:00:24", wantErr: true},
		{input: "00:00:60:00", wantErr: true},
		{input: "00:60:00:00", wantErr: true},
		{input: "a:b", wantErr: true},
		{input: "1:2:3:4:5", wantErr: true},
		{input: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ToFrames(tt.input, 24)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ToFrames(%q) error = %v, want ErrInvalid", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToFrames(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToFrames(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatter_Units(t *testing.T) {
	frames := New(Frames, 24)
	seconds := New(Seconds, 24)

	if got := frames.Format(48); got != "00:00:02:00" {
		t.Errorf("frames.Format(48) = %q", got)
	}
	if got := seconds.Format(2.5); got != "00:00:02:12" {
		t.Errorf("seconds.Format(2.5) = %q", got)
	}

	v, err := seconds.Parse("00:00:02:12")
	if err != nil || v != 2.5 {
		t.Errorf("seconds.Parse = %v, %v; want 2.5", v, err)
	}
	v, err = frames.Parse(" 42.5 ")
	if err != nil || v != 42.5 {
		t.Errorf("frames.Parse plain number = %v, %v; want 42.5", v, err)
	}
	if _, err := frames.Parse(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("frames.Parse empty error = %v", err)
	}
	if _, err := frames.Parse("NaN"); !errors.Is(err, ErrInvalid) {
		t.Errorf("frames.Parse NaN error = %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"": Frames, "Frames": Frames, "seconds": Seconds, "s": Seconds} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseUnit("ticks"); err == nil {
		t.Error("ParseUnit(ticks) should fail")
	}
}
