package ui

// Base provides placement, size and focus for UI components. Components
// receive mouse events in screen coordinates; Local translates them.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    engine *timeline.Engine
//	}
type Base struct {
	x, y          int
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetOrigin sets the screen cell of the component's top-left corner.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Local converts a screen cell to component-local coordinates.
func (b Base) Local(screenX, screenY int) (x, y int) {
	return screenX - b.x, screenY - b.y
}

// Contains reports whether a screen cell lies inside the component.
func (b Base) Contains(screenX, screenY int) bool {
	x, y := b.Local(screenX, screenY)
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
