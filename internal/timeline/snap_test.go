package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/cutline/internal/theme"
)

func TestSnapper_Snap(t *testing.T) {
	mp := NewMapper(theme.Default().Metrics, 1, 1) // 10 px per unit

	tests := []struct {
		name      string
		tolerance float64
		req       SnapRequest
		want      SnapResult
	}{
		{
			name:      "leading edge onto previous clip end",
			tolerance: 12,
			req:       SnapRequest{Tentative: 61, Duration: 40, Candidates: []float64{0, 111, 10, 60}},
			want:      SnapResult{Start: 60, Snapped: true, Edge: EdgeLeading, Target: 60},
		},
		{
			name:      "beyond tolerance keeps tentative",
			tolerance: 12,
			req:       SnapRequest{Tentative: 62.5, Duration: 40, Candidates: []float64{0, 111, 10, 60}},
			want:      SnapResult{Start: 62.5},
		},
		{
			name:      "trailing edge closer wins",
			tolerance: 25,
			req:       SnapRequest{Tentative: 10, Duration: 10, Candidates: []float64{5, 21}},
			want:      SnapResult{Start: 11, Snapped: true, Edge: EdgeTrailing, Target: 21},
		},
		{
			name:      "tie goes to the leading edge",
			tolerance: 25,
			req:       SnapRequest{Tentative: 10, Duration: 10, Candidates: []float64{8, 22}},
			want:      SnapResult{Start: 8, Snapped: true, Edge: EdgeLeading, Target: 8},
		},
		{
			name:      "exact tolerance is eligible",
			tolerance: 5,
			req:       SnapRequest{Tentative: 20.5, Duration: 5, Candidates: []float64{20}},
			want:      SnapResult{Start: 20, Snapped: true, Edge: EdgeLeading, Target: 20},
		},
		{
			name:      "no candidates",
			tolerance: 8,
			req:       SnapRequest{Tentative: 42, Duration: 5},
			want:      SnapResult{Start: 42},
		},
		{
			name:      "negative tentative clamps to zero",
			tolerance: 8,
			req:       SnapRequest{Tentative: -3, Duration: 10},
			want:      SnapResult{Start: 0},
		},
		{
			name:      "trailing snap clamped after translation",
			tolerance: 8,
			req:       SnapRequest{Tentative: 0, Duration: 10, Candidates: []float64{9.5}},
			want:      SnapResult{Start: 0, Snapped: true, Edge: EdgeTrailing, Target: 9.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSnapper(mp, tt.tolerance).Snap(tt.req)
			assert.Equal(t, tt.want.Snapped, got.Snapped)
			assert.Equal(t, tt.want.Edge, got.Edge)
			assert.InDelta(t, tt.want.Start, got.Start, 1e-9)
			assert.InDelta(t, tt.want.Target, got.Target, 1e-9)
		})
	}
}

func TestSnapper_ToleranceIsInPixels(t *testing.T) {
	req := SnapRequest{Tentative: 10.5, Duration: 5, Candidates: []float64{10}}

	// 0.5 units is 5 px at zoom 1 and 20 px at zoom 4.
	near := NewSnapper(NewMapper(theme.Default().Metrics, 1, 1), 8).Snap(req)
	far := NewSnapper(NewMapper(theme.Default().Metrics, 4, 1), 8).Snap(req)

	assert.True(t, near.Snapped)
	assert.False(t, far.Snapped)
	assert.InDelta(t, 10.5, far.Start, 1e-9)
}

func TestSnapCandidates(t *testing.T) {
	got := snapCandidates(videoTrack(), "b", 111)
	assert.ElementsMatch(t, []float64{0, 111, 10, 60}, got)
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "none", EdgeNone.String())
	assert.Equal(t, "leading", EdgeLeading.String())
	assert.Equal(t, "trailing", EdgeTrailing.String())
}
