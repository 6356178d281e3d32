package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cutline/internal/theme"
)

// newTestEngine builds an engine on the dark preset with deterministic IDs.
func newTestEngine(t *testing.T, overrides map[string]any, opts ...Option) *Engine {
	t.Helper()
	th, err := theme.Resolve(theme.Dark, overrides)
	require.NoError(t, err)

	n := 0
	ids := WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	return New(th, append([]Option{ids}, opts...)...)
}

// videoTrack is the "Video 1" track with clips [10,60) and [70,110).
func videoTrack() TrackData {
	return TrackData{
		ID:   "v1",
		Name: "Video 1",
		Clips: []ClipData{
			{ID: "a", Name: "intro", Start: 10, Duration: 50},
			{ID: "b", Name: "scene", Start: 70, Duration: 40},
		},
	}
}

func drain[T any](ch <-chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
