package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "Video 1", 10, "Video 1"},
		{"exact fit", "intro", 5, "intro"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"very short max width", "hello", 3, "he…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
		{"control characters dropped", "a\x07b", 10, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string unchanged", "Audio 2", "Audio 2"},
		{"newline removed", "line\nbreak", "linebreak"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte removed", "a\x85b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcdef", 4, "abc…"},
		{"abcd", 4, "abcd"},
	}

	for _, tt := range tests {
		if got := Fit(tt.input, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"abcdefgh", 4, "abc…"},
	}

	for _, tt := range tests {
		if got := Center(tt.input, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("a", "b", 5)
	if got != "a   b" {
		t.Errorf("Row() = %q, want %q", got, "a   b")
	}

	got = Row("left", "right", 8)
	if got != "left    " {
		t.Errorf("Row() without room for right = %q, want %q", got, "left    ")
	}

	styled := lipgloss.NewStyle().Bold(true).Render("x")
	if w := lipgloss.Width(Row(styled, "y", 10)); w != 10 {
		t.Errorf("Row() with styled left width = %d, want 10", w)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(3); got != "   " {
		t.Errorf("EmptyLine(3) = %q", got)
	}
	if got := EmptyLine(-1); got != "" {
		t.Errorf("EmptyLine(-1) = %q, want empty", got)
	}
}
