// Package ui provides shared UI constants and utilities.
package ui

// Cell projection: the timeline scene is laid out in pixels and drawn into
// terminal cells of this nominal size.
const (
	// ColumnPixels is the scene width covered by one terminal column.
	ColumnPixels = 10

	// RowPixels is the scene height covered by one terminal row.
	RowPixels = 15
)

// Toolbar sizing.
const (
	// MinSliderWidth is the narrowest usable zoom slider, in columns.
	MinSliderWidth = 6

	// MaxSliderWidth caps a slider on wide terminals.
	MaxSliderWidth = 24
)

// ScrollStep is the number of columns or rows moved per scroll action.
const ScrollStep = 4
