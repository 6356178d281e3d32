package timeline

import (
	"math"

	"github.com/llehouerou/cutline/internal/timecode"
)

// maxRulerTicks bounds the ticks of one ruler. Wider content coarsens the
// interval instead.
const maxRulerTicks = 4096

var (
	secondIntervals = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 15, 30, 60, 120, 300, 600, 900, 1800, 3600}
	frameIntervals  = []float64{1, 2, 4, 6, 12, 24, 48, 120, 240, 480, 720, 1440, 2880, 7200, 14400, 43200, 86400}
)

func niceIntervals(u timecode.Unit) []float64 {
	if u == timecode.Seconds {
		return secondIntervals
	}
	return frameIntervals
}

// TickInterval picks the major tick interval, in time units, for a scale of
// pixelsPerUnit. It returns the largest nice interval whose pixel spacing
// falls inside [minSpacing, maxSpacing]; failing that, the smallest interval
// at least minSpacing wide.
func TickInterval(pixelsPerUnit float64, unit timecode.Unit, minSpacing, maxSpacing float64) float64 {
	table := niceIntervals(unit)

	best := 0.0
	for _, iv := range table {
		px := iv * pixelsPerUnit
		if px >= minSpacing && px <= maxSpacing {
			best = iv
		}
	}
	if best > 0 {
		return best
	}

	for _, iv := range table {
		if iv*pixelsPerUnit >= minSpacing {
			return iv
		}
	}

	iv := table[len(table)-1]
	for iv*pixelsPerUnit < minSpacing {
		iv *= 2
	}
	return iv
}

// minorDivisions returns how many parts a major interval is split into.
// Frame intervals only split into whole frames.
func minorDivisions(major, pixelsPerUnit, minMinorSpacing float64, unit timecode.Unit) int {
	majorPx := major * pixelsPerUnit
	for _, d := range []int{5, 2} {
		if unit == timecode.Frames && math.Mod(major, float64(d)) != 0 {
			continue
		}
		if majorPx/float64(d) >= minMinorSpacing {
			return d
		}
	}
	return 1
}

func layoutRuler(rect Rect, width, pixelsPerUnit float64, opts LayoutOptions) Ruler {
	m := opts.Metrics
	major := TickInterval(pixelsPerUnit, opts.Labels.Unit, m.RulerMinSpacing, m.RulerMaxSpacing)
	div := minorDivisions(major, pixelsPerUnit, m.RulerMinorSpacing, opts.Labels.Unit)
	minor := major / float64(div)
	for width/(minor*pixelsPerUnit) > maxRulerTicks {
		major *= 2
		minor = major / float64(div)
	}

	// Ticks are indexed rather than accumulated so long rulers do not drift.
	n := int(math.Floor(width/(minor*pixelsPerUnit) + 1e-9))
	ticks := make([]Tick, 0, n+1)
	for k := 0; k <= n; k++ {
		t := float64(k) * minor
		tick := Tick{Time: t, X: t * pixelsPerUnit, Major: k%div == 0}
		if tick.Major {
			tick.Label = opts.Labels.Format(t)
		}
		ticks = append(ticks, tick)
	}

	return Ruler{
		Rect:          rect,
		MajorInterval: major,
		MinorInterval: minor,
		Ticks:         ticks,
	}
}
