package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cutline/internal/theme"
)

// Theme is the terminal palette derived from a timeline theme, plus the
// chrome colours for the toolbar, status line and popups.
type Theme struct {
	Name string

	// Scene colours, one per timeline theme key.
	TimeLabelBg   lipgloss.Color
	TimeLabelText lipgloss.Color
	RulerBg       lipgloss.Color
	TickMajor     lipgloss.Color
	TickMinor     lipgloss.Color
	Playhead      lipgloss.Color
	HeaderBg      lipgloss.Color
	HeaderText    lipgloss.Color
	HeaderBorder  lipgloss.Color
	LaneBg        [2]lipgloss.Color // zebra stripes
	LaneBorder    lipgloss.Color
	ClipFill      lipgloss.Color
	ClipSelected  lipgloss.Color
	ClipBorder    lipgloss.Color
	ClipText      lipgloss.Color
	EndLine       lipgloss.Color
	Background    lipgloss.Color

	// Chrome
	Primary  lipgloss.Color // active controls
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	Border   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the chrome.
type Styles struct {
	Base         lipgloss.Style
	Muted        lipgloss.Style
	Subtle       lipgloss.Style
	Title        lipgloss.Style
	Key          lipgloss.Style // key names in help
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	TimeLabel    lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style
}

var current = FromTheme(theme.Default())

// T returns the active palette.
func T() *Theme {
	return current
}

// Use makes t the active palette.
func Use(t *Theme) {
	if t != nil {
		current = t
	}
}

// FromTheme builds a palette from a resolved timeline theme. Chrome colours
// are derived from the scene colours so both presets stay readable.
func FromTheme(th theme.Theme) *Theme {
	c := th.Colors
	t := &Theme{
		Name:          th.Name,
		TimeLabelBg:   lipgloss.Color(c.TimeLabelBg),
		TimeLabelText: lipgloss.Color(c.TimeLabelText),
		RulerBg:       lipgloss.Color(c.RulerBg),
		TickMajor:     lipgloss.Color(c.RulerTickMajor),
		TickMinor:     lipgloss.Color(c.RulerTickMinor),
		Playhead:      lipgloss.Color(c.Playhead),
		HeaderBg:      lipgloss.Color(c.TrackHeaderBg),
		HeaderText:    lipgloss.Color(c.TrackHeaderText),
		HeaderBorder:  lipgloss.Color(c.TrackHeaderBorder),
		LaneBg:        [2]lipgloss.Color{lipgloss.Color(c.TrackLaneBg1), lipgloss.Color(c.TrackLaneBg2)},
		LaneBorder:    lipgloss.Color(c.TrackLaneBorder),
		ClipFill:      lipgloss.Color(c.ClipFill),
		ClipSelected:  lipgloss.Color(c.ClipFillSelected),
		ClipBorder:    lipgloss.Color(c.ClipBorder),
		EndLine:       lipgloss.Color(c.EndLine),
		Background:    lipgloss.Color(c.Background),

		Primary: lipgloss.Color(c.Playhead),
		FgBase:  lipgloss.Color(c.TrackHeaderText),
		Border:  lipgloss.Color(c.TrackHeaderBorder),
		Success: lipgloss.Color("#42b883"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#f1a208"),
	}
	t.FgMuted = Blend(t.FgBase, t.Background, 0.35)
	t.FgSubtle = Blend(t.FgBase, t.Background, 0.6)
	t.ClipText = Contrast(t.ClipFill)
	return t
}

// S returns the pre-built styles for this palette.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.HeaderBg).
			Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),
		TimeLabel: lipgloss.NewStyle().
			Foreground(t.TimeLabelText).
			Background(t.TimeLabelBg).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
