package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border used by popups. A focused panel
// takes the accent colour.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
