package timelineview

import (
	"math"

	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/ui"
)

// projection maps scene pixels to terminal cells and back. The header column
// and the ruler rows are pinned; lanes scroll under them.
type projection struct {
	headerCols int
	rulerRows  int
	scrollCol  int // content columns hidden on the left
	scrollRow  int // lane rows hidden under the ruler
}

func newProjection(m theme.Metrics, scrollCol, scrollRow int) projection {
	return projection{
		headerCols: cellsFor(m.HeaderWidth, ui.ColumnPixels),
		rulerRows:  cellsFor(m.RulerHeight, ui.RowPixels),
		scrollCol:  scrollCol,
		scrollRow:  scrollRow,
	}
}

func cellsFor(px, per float64) int {
	return int(math.Ceil(px / per))
}

// col returns the screen column of content-space x.
func (p projection) col(x float64) int {
	return p.headerCols + int(math.Floor(x/ui.ColumnPixels)) - p.scrollCol
}

// row returns the screen row of a scene y below the ruler.
func (p projection) row(y float64) int {
	return int(math.Floor(y/ui.RowPixels)) - p.scrollRow
}

// span returns the columns [x0, x1) covering content-space [x, x+w), at
// least one column wide.
func (p projection) span(x, w float64) (x0, x1 int) {
	x0 = p.col(x)
	x1 = p.col(x + w)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

// rows returns the rows [y0, y1) covering scene [y, y+h), at least one row.
func (p projection) rows(y, h float64) (y0, y1 int) {
	y0 = p.row(y)
	y1 = p.row(y + h)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return y0, y1
}

// contentX returns the content-space x at the centre of a screen column.
// Columns inside the header map to negative x.
func (p projection) contentX(col int) float64 {
	return (float64(col-p.headerCols+p.scrollCol) + 0.5) * ui.ColumnPixels
}

// sceneY returns the scene y at the centre of a screen row.
func (p projection) sceneY(row int) float64 {
	if row < p.rulerRows {
		return (float64(row) + 0.5) * ui.RowPixels
	}
	return (float64(row+p.scrollRow) + 0.5) * ui.RowPixels
}

// inHeader reports whether a screen column lies in the pinned header.
func (p projection) inHeader(col int) bool {
	return col < p.headerCols
}
