package timelineview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/cutline/internal/theme"
)

func TestProjection_DefaultMetrics(t *testing.T) {
	p := newProjection(theme.Default().Metrics, 0, 0)

	assert.Equal(t, 15, p.headerCols)
	assert.Equal(t, 2, p.rulerRows)
}

func TestProjection_RoundTrip(t *testing.T) {
	tests := []struct {
		name                 string
		scrollCol, scrollRow int
	}{
		{"unscrolled", 0, 0},
		{"scrolled", 12, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProjection(theme.Default().Metrics, tt.scrollCol, tt.scrollRow)
			for col := p.headerCols; col < p.headerCols+50; col++ {
				assert.Equal(t, col, p.col(p.contentX(col)))
			}
			for row := p.rulerRows; row < 20; row++ {
				assert.Equal(t, row, p.row(p.sceneY(row)))
			}
		})
	}
}

func TestProjection_PinnedRulerRows(t *testing.T) {
	p := newProjection(theme.Default().Metrics, 0, 4)

	assert.InDelta(t, 7.5, p.sceneY(0), 1e-9)
	assert.InDelta(t, 22.5, p.sceneY(1), 1e-9)
	assert.InDelta(t, 97.5, p.sceneY(2), 1e-9, "lane rows scroll")
}

func TestProjection_SpanIsAtLeastOneCell(t *testing.T) {
	p := newProjection(theme.Default().Metrics, 0, 0)

	x0, x1 := p.span(100, 2)
	assert.Equal(t, 25, x0)
	assert.Equal(t, 26, x1)

	y0, y1 := p.rows(30, 60)
	assert.Equal(t, 2, y0)
	assert.Equal(t, 6, y1)

	assert.True(t, p.inHeader(14))
	assert.False(t, p.inHeader(15))
}
