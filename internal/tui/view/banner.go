package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BannerStyles groups styles for the error banner and empty states.
type BannerStyles struct {
	Error      lipgloss.Style
	Empty      lipgloss.Style
	EmptyHint  lipgloss.Style
	EmptyTitle lipgloss.Style
}

// RenderErrorBanner renders a one line banner for a failed page load.
func RenderErrorBanner(message string, width int, s BannerStyles) string {
	if message == "" {
		return ""
	}
	frameW, _ := s.Error.GetFrameSize()
	inner := max(width-frameW, 0)
	text := "✗ " + message + "  [x] dismiss  [r] retry"
	if inner > 0 {
		text = ansi.Truncate(text, inner, "…")
	}
	return s.Error.Width(inner).Render(text)
}

// RenderEmptyState renders the message shown instead of the card grid.
func RenderEmptyState(d DisplayModel, width, height int, s BannerStyles) string {
	content := s.EmptyTitle.Render(d.Message)
	if d.Empty == EmptySearch {
		content += "\n\n" + s.EmptyHint.Render("[esc] clear search")
	}
	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, s.Empty.Render(content))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
