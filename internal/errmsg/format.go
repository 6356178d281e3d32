// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Track operations
	OpTrackAdd     Op = "add track"
	OpTrackRemove  Op = "remove track"
	OpTrackReorder Op = "reorder track"

	// Clip operations
	OpClipAdd    Op = "add clip"
	OpClipRemove Op = "remove clip"
	OpClipMove   Op = "move clip"
	OpClipResize Op = "resize clip"
	OpClipAssign Op = "move clip to track"

	// Time operations
	OpSeek      Op = "seek"
	OpSetEnd    Op = "set end marker"
	OpParseTime Op = "parse timecode"
	OpPlayback  Op = "advance playback"

	// View operations
	OpZoom   Op = "zoom"
	OpLayout Op = "compute layout"

	// Export
	OpExportLayout Op = "export layout"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpThemeLoad  Op = "resolve theme"
	OpSeed       Op = "load tracks"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
