// Package popup frames modal content and places it over the timeline view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cutline/internal/ui/styles"
)

// Frame wraps content in a rounded border with an optional title and footer
// line. The border takes the accent colour.
func Frame(title, content, footer string) string {
	t := styles.T()
	var parts []string
	if title != "" {
		parts = append(parts, t.S().Title.Render(title), "")
	}
	parts = append(parts, content)
	if footer != "" {
		parts = append(parts, "", t.S().Subtle.Render(footer))
	}
	return styles.PanelStyle(true).
		Padding(0, 1).
		Render(strings.Join(parts, "\n"))
}

// Place splices box over base with its top-left corner at (x, y). Cells of
// base outside the box are kept, styling included. base is treated as width
// cells wide.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		b := baseLines[row]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}
		lw := ansi.StringWidth(line)
		if x+lw > width {
			line = ansi.Truncate(line, max(width-x, 0), "")
			lw = ansi.StringWidth(line)
		}
		baseLines[row] = ansi.Cut(b, 0, x) + line + ansi.Cut(b, x+lw, width)
	}
	return strings.Join(baseLines, "\n")
}

// Overlay centres box over base, a screen of width x height cells.
func Overlay(base, box string, width, height int) string {
	bw, bh := lipgloss.Size(box)
	return Place(base, box, max((width-bw)/2, 0), max((height-bh)/2, 0), width)
}
