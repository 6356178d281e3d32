package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := BlendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i])
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// BlendColors returns size colours blended from from to to in HCL space.
func BlendColors(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size < 1 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1 := toColorful(from)
	c2 := toColorful(to)

	colors := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return colors
}

// Blend mixes from towards to by t in [0, 1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), t).Clamped().Hex())
}

// Contrast returns near-black or near-white, whichever reads better on bg.
func Contrast(bg lipgloss.Color) lipgloss.Color {
	_, _, l := toColorful(bg).Hcl()
	if l > 0.6 {
		return lipgloss.Color("#101010")
	}
	return lipgloss.Color("#f0f0f0")
}

func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	// ANSI palette indices have no fixed RGB value; use a neutral gray.
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
