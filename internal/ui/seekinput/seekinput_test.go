package seekinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cutline/internal/timecode"
	"github.com/llehouerou/cutline/internal/ui/action"
	"github.com/llehouerou/cutline/internal/ui/testutil"
)

func newTestInput(t *testing.T, unit timecode.Unit, current float64) (*testutil.PopupHarness, *Model) {
	t.Helper()
	m := New(timecode.New(unit, 24), current)
	h := testutil.NewPopupHarness(m)
	h.SetSize(40, 10)
	return h, m
}

// clearField empties the field with ctrl+u.
func clearField(h *testutil.PopupHarness) {
	h.Press("ctrl+u")
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok, "expected an action.Msg")
	assert.Equal(t, "seekinput", msg.Source)
	return msg.Action
}

func TestNew_PrefillsCurrentTime(t *testing.T) {
	h, m := newTestInput(t, timecode.Frames, 60)

	assert.Equal(t, "00:00:02:12", m.Value())
	assert.True(t, h.ViewContains("Go to time"))
	assert.True(t, h.ViewContains("00:00:02:12"))
	assert.True(t, h.ViewContains("Enter: seek"))
	assert.Len(t, h.Commands(), 1, "cursor blink")
}

func TestEnter_Seeks(t *testing.T) {
	tests := []struct {
		name  string
		unit  timecode.Unit
		input string
		want  float64
	}{
		{"timecode in frames", timecode.Frames, "00:00:02:00", 48},
		{"short timecode", timecode.Frames, "1:12", 36},
		{"plain number", timecode.Frames, "95", 95},
		{"timecode in seconds", timecode.Seconds, "00:01:00:12", 60.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestInput(t, tt.unit, 0)
			clearField(h)
			h.Type(tt.input)

			a := actionOf(t, h.Press("enter"))
			seek, ok := a.(Seek)
			require.True(t, ok, "got %T", a)
			assert.InDelta(t, tt.want, seek.Time, 1e-9)
		})
	}
}

func TestEnter_InvalidShowsError(t *testing.T) {
	h, m := newTestInput(t, timecode.Frames, 0)
	clearField(h)
	h.Type("soon")

	assert.Nil(t, h.Press("enter"))
	require.Error(t, m.Err())
	require.ErrorIs(t, m.Err(), timecode.ErrInvalid)
	assert.True(t, h.ViewContains("invalid"))

	h.Press("backspace")
	assert.NoError(t, m.Err(), "editing clears the error")
}

func TestEscape_Cancels(t *testing.T) {
	h, _ := newTestInput(t, timecode.Frames, 0)

	a := actionOf(t, h.Press("esc"))
	assert.Equal(t, Cancel{}, a)
}

func TestType_RespectsLimit(t *testing.T) {
	h, m := newTestInput(t, timecode.Frames, 0)
	clearField(h)
	h.Type("12345678901234567890")

	assert.Len(t, m.Value(), maxInput)
}
