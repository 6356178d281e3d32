package timeline

import "math"

// Zoom slider range.
const (
	SliderMin = 1
	SliderMax = 100
)

// Initial slider positions.
const (
	DefaultHSlider = 1
	DefaultVSlider = 50
)

// DefaultZoom returns the zoom factors at the initial slider positions.
func DefaultZoom() (h, v float64) {
	return SliderToZoom(AxisHorizontal, DefaultHSlider), SliderToZoom(AxisVertical, DefaultVSlider)
}

// SliderToZoom maps a slider value in [SliderMin, SliderMax] to a zoom
// factor: horizontal spans 0.5–4, vertical 0.5–2.
func SliderToZoom(axis Axis, value float64) float64 {
	v := math.Min(math.Max(value, SliderMin), SliderMax)
	if axis == AxisVertical {
		return 0.5 + v/100*1.5
	}
	return 0.5 + v/100*3.5
}

// ZoomToSlider is the inverse of SliderToZoom, clamped to the slider range.
func ZoomToSlider(axis Axis, zoom float64) float64 {
	var v float64
	if axis == AxisVertical {
		v = (zoom - 0.5) / 1.5 * 100
	} else {
		v = (zoom - 0.5) / 3.5 * 100
	}
	return math.Min(math.Max(v, SliderMin), SliderMax)
}

// sliderValueAt maps a slider-local x over a slider of width extent.
func sliderValueAt(x, extent float64) float64 {
	f := math.Min(math.Max(x/extent, 0), 1)
	return SliderMin + f*(SliderMax-SliderMin)
}
