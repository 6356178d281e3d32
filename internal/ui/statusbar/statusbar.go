// Package statusbar renders the one-line summary under the timeline.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cutline/internal/timecode"
	"github.com/llehouerou/cutline/internal/ui/render"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

const sep = " · "

// Selection describes the selected clip.
type Selection struct {
	Track      string
	Name       string
	Start, End float64
}

// State holds what the status bar shows.
type State struct {
	Playing bool
	Loop    bool
	Follow  bool

	Time   float64
	End    float64
	Floor  float64 // lowest end the clips allow, shown while End is past it
	Labels timecode.Formatter

	Tracks int
	Clips  int
	HZoom  float64
	VZoom  float64

	Selection *Selection

	// Error replaces the help hint when set.
	Error string
}

func stateLabel(s State) string {
	t := styles.T()
	label := lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true).Render("■ STOPPED")
	if s.Playing {
		label = lipgloss.NewStyle().Foreground(t.Success).Bold(true).Render("▶ PLAYING")
	}
	if s.Loop {
		label += t.S().Subtle.Render(" ⟲")
	}
	return label
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}

// Counts returns the "N tracks · M clips" summary.
func Counts(tracks, clips int) string {
	return plural(tracks, "track") + sep + plural(clips, "clip")
}

// Zoom formats the zoom factors as "H×1.25 V×1.00".
func Zoom(h, v float64) string {
	return fmt.Sprintf("H×%.2f V×%.2f", h, v)
}

func position(s State) string {
	t := styles.T()
	out := t.S().Base.Render(s.Labels.Format(s.Time)) + t.S().Muted.Render(" / "+s.Labels.Format(s.End))
	if s.Floor < s.End {
		out += t.S().Subtle.Render(" (min " + s.Labels.Format(s.Floor) + ")")
	}
	return out
}

func left(s State) string {
	t := styles.T()
	parts := []string{
		stateLabel(s),
		position(s),
		t.S().Muted.Render(Counts(s.Tracks, s.Clips)),
		t.S().Muted.Render(Zoom(s.HZoom, s.VZoom)),
	}
	if s.Follow {
		parts = append(parts, t.S().Subtle.Render("follow"))
	}
	if sel := s.Selection; sel != nil {
		name := render.Truncate(sel.Name, 24)
		if name == "" {
			name = "clip"
		}
		if sel.Track != "" {
			name = render.Truncate(sel.Track, 16) + " › " + name
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(t.ClipSelected).Render(
			name+" "+s.Labels.Format(sel.Start)+"–"+s.Labels.Format(sel.End)))
	}
	return " " + strings.Join(parts, t.S().Subtle.Render(sep))
}

func right(s State) string {
	t := styles.T()
	if s.Error != "" {
		return t.S().Error.Render(render.Truncate(s.Error, 60)) + " "
	}
	return t.S().Key.Render("?") + t.S().Subtle.Render(" help") + " "
}

// Render renders the status line, exactly width cells wide.
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}
	return render.Row(left(s), right(s), width)
}
