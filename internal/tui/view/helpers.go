package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PlaceBox renders content top-left aligned in a w x h box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PlaceCentered renders content in the middle of a w x h box, as used for the
// loading and retry hints.
func PlaceCentered(w, h int, content string, bg lipgloss.Color) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content, lipgloss.WithWhitespaceBackground(bg))
}

// PadLinesWithBackground pads every line to width and the block to height,
// filling with bg. Lines wider than width are left alone and extra lines are
// dropped.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	fill := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + fill.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}
