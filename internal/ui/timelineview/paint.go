package timelineview

import (
	"math"

	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/ui"
	"github.com/llehouerou/cutline/internal/ui/render"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

// Glyphs.
const (
	glyphLine      = "│"
	glyphTickMajor = "┃"
	glyphTickMinor = "╵"
	glyphGrip      = "▼"
	glyphSnap      = "┊"
	glyphBorder    = "─"
	glyphClipEdge  = "▏"
)

// scene is everything one paint pass reads.
type scene struct {
	geom  timeline.Geometry
	pal   *styles.Theme
	proj  projection
	snapX float64 // content x of the active snap guide
	snap  bool
}

// paint draws the scene back to front. The pinned header column goes last.
func paint(s scene, w, h int) *canvas {
	c := newCanvas(w, h, s.pal.Background)
	if w <= 0 || h <= 0 {
		return c
	}
	p := s.proj
	laneTop := p.rulerRows

	for _, l := range s.geom.Lanes {
		x0, x1 := p.span(l.Rect.X, l.Rect.W)
		y0, y1 := p.rows(l.Rect.Y, l.Rect.H)
		bg := s.pal.LaneBg[0]
		if l.Alternate {
			bg = s.pal.LaneBg[1]
		}
		c.fill(max(x0, p.headerCols), max(y0, laneTop), x1, y1, bg)
	}

	for _, cb := range s.geom.Clips {
		paintClip(c, s, cb)
	}

	em := s.geom.EndMarker
	ey0, ey1 := p.rows(em.Line.Y1, em.Line.Y2-em.Line.Y1)
	if ex := p.col(em.X); ex >= p.headerCols {
		c.vline(ex, max(ey0, laneTop), ey1, glyphLine, s.pal.EndLine)
	}

	if s.snap {
		if sx := p.col(s.snapX); sx >= p.headerCols {
			c.vline(sx, laneTop, h, glyphSnap, s.pal.Primary)
		}
	}

	paintRuler(c, s)

	ph := s.geom.Playhead
	if px := p.col(ph.X); px >= p.headerCols {
		py0, py1 := p.rows(ph.Line.Y1, ph.Line.Y2-ph.Line.Y1)
		c.vline(px, max(py0, laneTop), py1, glyphLine, s.pal.Playhead)
		// The grip hangs from the bottom of the ruler.
		g0 := int(math.Floor(ph.Grip[0].Y / ui.RowPixels))
		g1 := max(cellsFor(ph.Grip[2].Y, ui.RowPixels), g0+1)
		for y := max(g0, 0); y < min(g1, laneTop); y++ {
			c.set(px, y, glyphGrip, s.pal.Playhead)
		}
	}

	paintHeaders(c, s)
	return c
}

func paintClip(c *canvas, s scene, cb timeline.ClipBox) {
	p := s.proj
	x0, x1 := p.span(cb.Rect.X, cb.Rect.W)
	y0, y1 := p.rows(cb.Rect.Y, cb.Rect.H)
	left := max(x0, p.headerCols)
	top := max(y0, p.rulerRows)
	if left >= x1 || top >= y1 {
		return
	}

	fill := s.pal.ClipFill
	if cb.Selected {
		fill = s.pal.ClipSelected
	}
	text := styles.Contrast(fill)
	c.fill(left, top, x1, y1, fill)
	if x0 >= p.headerCols {
		c.vline(x0, top, y1, glyphClipEdge, s.pal.ClipBorder)
	}

	name := cb.Name
	if name == "" {
		name = cb.ClipID
	}
	if y0 >= p.rulerRows {
		c.text(left+1, y0, render.Sanitize(name), text, cb.Selected, x1)
	}

	// Edge timecodes on the last row when the clip is tall and wide enough.
	if y1-y0 >= 3 && y1-1 >= p.rulerRows {
		end := c.text(left+1, y1-1, cb.StartLabel, text, false, x1)
		if x1-end > len(cb.EndLabel)+1 {
			c.text(x1-len(cb.EndLabel), y1-1, cb.EndLabel, text, false, x1)
		}
	}
}

func paintRuler(c *canvas, s scene) {
	p := s.proj
	r := s.geom.Ruler
	c.fill(p.headerCols, 0, c.w, p.rulerRows, s.pal.RulerBg)
	tickRow := p.rulerRows - 1

	labelEnd := p.headerCols
	for _, t := range r.Ticks {
		x := p.col(t.X)
		if x < p.headerCols || x >= c.w {
			continue
		}
		if !t.Major {
			c.set(x, tickRow, glyphTickMinor, s.pal.TickMinor)
			continue
		}
		c.set(x, tickRow, glyphTickMajor, s.pal.TickMajor)
		if t.Label != "" && x >= labelEnd && tickRow > 0 {
			labelEnd = c.text(x, 0, t.Label, s.pal.TickMajor, false, c.w) + 1
		}
	}
}

func paintHeaders(c *canvas, s scene) {
	p := s.proj
	hc := p.headerCols

	c.fill(0, 0, hc, c.h, s.pal.Background)
	c.fill(0, 0, hc, p.rulerRows, s.pal.TimeLabelBg)
	c.text(0, 0, render.Center(s.geom.TimeText, hc), s.pal.TimeLabelText, true, hc)

	for _, th := range s.geom.Headers {
		y0, y1 := p.rows(th.Rect.Y, th.Rect.H)
		top := max(y0, p.rulerRows)
		if top >= y1 {
			continue
		}
		c.fill(0, top, hc, y1, s.pal.HeaderBg)
		if y0 >= p.rulerRows {
			c.text(1, y0, render.Truncate(th.Name, hc-3), s.pal.HeaderText, true, hc-1)
		}
		if y1-y0 >= 2 && y1-1 >= p.rulerRows {
			for x := range hc - 1 {
				c.set(x, y1-1, glyphBorder, s.pal.HeaderBorder)
			}
		}
	}
	c.vline(hc-1, 0, c.h, glyphLine, s.pal.HeaderBorder)
}
