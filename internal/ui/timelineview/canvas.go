package timelineview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// cell is one terminal cell. An empty text marks the right half of a wide
// grapheme painted in the cell before it.
type cell struct {
	text string
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// canvas is a fixed grid of styled cells, painted back to front.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, bg lipgloss.Color) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = cell{text: " ", bg: bg}
	}
	return c
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// fill paints the background of [x0, x1) x [y0, y1) and blanks its text.
func (c *canvas) fill(x0, y0, x1, y1 int, bg lipgloss.Color) {
	x0, x1 = max(x0, 0), min(x1, c.w)
	y0, y1 = max(y0, 0), min(y1, c.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.splitWide(x, y)
			p := c.at(x, y)
			*p = cell{text: " ", bg: bg}
		}
	}
}

// set writes a single-width glyph, keeping the cell background.
func (c *canvas) set(x, y int, glyph string, fg lipgloss.Color) {
	p := c.at(x, y)
	if p == nil {
		return
	}
	c.splitWide(x, y)
	p.text = glyph
	p.fg = fg
	p.bold = false
}

// vline draws glyph down column x over rows [y0, y1).
func (c *canvas) vline(x, y0, y1 int, glyph string, fg lipgloss.Color) {
	for y := max(y0, 0); y < min(y1, c.h); y++ {
		c.set(x, y, glyph, fg)
	}
}

// text paints s from column x, grapheme by grapheme, stopping before limit.
// It returns the column after the last painted grapheme.
func (c *canvas) text(x, y int, s string, fg lipgloss.Color, bold bool, limit int) int {
	if y < 0 || y >= c.h {
		return x
	}
	limit = min(limit, c.w)
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width := gr.Width()
		if width <= 0 {
			continue
		}
		if x+width > limit {
			break
		}
		if x >= 0 {
			c.splitWide(x, y)
			p := c.at(x, y)
			p.text, p.fg, p.bold = gr.Str(), fg, bold
			for i := 1; i < width; i++ {
				c.clearRight(x+i, y)
				q := c.at(x+i, y)
				q.text, q.fg = "", fg
			}
		}
		x += width
	}
	return x
}

// splitWide blanks whichever half of a wide grapheme survives when the other
// half at (x, y) is overwritten.
func (c *canvas) splitWide(x, y int) {
	p := c.at(x, y)
	if p == nil {
		return
	}
	if p.text == "" {
		if left := c.at(x-1, y); left != nil {
			left.text = " "
		}
	}
	c.clearRight(x, y)
}

// clearRight blanks continuation cells after (x, y).
func (c *canvas) clearRight(x, y int) {
	for i := x + 1; i < c.w; i++ {
		q := c.at(i, y)
		if q.text != "" {
			break
		}
		q.text = " "
	}
}

// render returns the canvas as h lines of exactly w cells, grouping runs of
// equal style into one lipgloss render each.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	var run strings.Builder
	for y := range c.h {
		var b strings.Builder
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for start < len(row) {
			s := row[start]
			run.Reset()
			end := start
			for end < len(row) && sameStyle(row[end], s) {
				run.WriteString(row[end].text)
				end++
			}
			b.WriteString(styleOf(s).Render(run.String()))
			start = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// plain returns the canvas text without styling, for tests.
func (c *canvas) plain() []string {
	lines := make([]string, c.h)
	for y := range c.h {
		var b strings.Builder
		for _, p := range c.cells[y*c.w : (y+1)*c.w] {
			b.WriteString(p.text)
		}
		lines[y] = b.String()
	}
	return lines
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func styleOf(p cell) lipgloss.Style {
	st := lipgloss.NewStyle().Background(p.bg)
	if p.fg != "" {
		st = st.Foreground(p.fg)
	}
	if p.bold {
		st = st.Bold(true)
	}
	return st
}
