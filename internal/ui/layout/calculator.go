// Package layout provides pure functions for terminal region calculations.
package layout

// Fixed region heights, in rows.
const (
	ToolbarHeight = 1
	StatusHeight  = 1
)

// MinTimelineHeight is the smallest timeline area worth drawing: the ruler
// plus one lane row.
const MinTimelineHeight = 3

// Regions splits the terminal into toolbar, timeline and status line, top to
// bottom. Rows are 0-based.
type Regions struct {
	Width          int
	ToolbarRow     int
	TimelineRow    int
	TimelineHeight int
	StatusRow      int
}

// Compute lays the regions out for a window. The timeline takes every row
// the bars leave; on a very short window it may be empty.
func Compute(width, height int) Regions {
	timelineHeight := max(height-ToolbarHeight-StatusHeight, 0)
	return Regions{
		Width:          max(width, 0),
		ToolbarRow:     0,
		TimelineRow:    ToolbarHeight,
		TimelineHeight: timelineHeight,
		StatusRow:      ToolbarHeight + timelineHeight,
	}
}

// InToolbar reports whether row y belongs to the toolbar.
func (r Regions) InToolbar(y int) bool {
	return y >= r.ToolbarRow && y < r.ToolbarRow+ToolbarHeight
}

// InTimeline reports whether row y belongs to the timeline area.
func (r Regions) InTimeline(y int) bool {
	return y >= r.TimelineRow && y < r.TimelineRow+r.TimelineHeight
}

// InStatus reports whether row y belongs to the status line.
func (r Regions) InStatus(y int) bool {
	return y >= r.StatusRow && y < r.StatusRow+StatusHeight
}

// Usable reports whether the timeline area can show at least one lane row.
func (r Regions) Usable() bool {
	return r.TimelineHeight >= MinTimelineHeight && r.Width > 0
}
