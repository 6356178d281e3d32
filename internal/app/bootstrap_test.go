package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/config"
	"github.com/llehouerou/cutline/internal/timeline"
)

func loadTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	return cfg
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		wantTracks int
		wantErr    string
	}{
		{name: "empty config", config: ""},
		{
			name: "seeded tracks",
			config: `
[[tracks]]
id = "v1"
name = "Video 1"

  [[tracks.clips]]
  id = "a"
  start = 0
  duration = 5
`,
			wantTracks: 1,
		},
		{name: "unknown theme", config: `theme = "sepia"`, wantErr: "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, tt.config)

			e, err := NewEngine(cfg, zap.NewNop())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(e.Close)

			assert.Equal(t, tt.wantTracks, e.TrackCount())

			h, v := e.Zoom()
			assert.InDelta(t, 0.535, h, 1e-9, "horizontal slider starts at 1")
			assert.InDelta(t, 1.25, v, 1e-9, "vertical slider starts at 50")
			assert.InDelta(t, float64(timeline.DefaultHSlider), timeline.ZoomToSlider(timeline.AxisHorizontal, h), 1e-9)
			assert.InDelta(t, float64(timeline.DefaultVSlider), timeline.ZoomToSlider(timeline.AxisVertical, v), 1e-9)
		})
	}
}
