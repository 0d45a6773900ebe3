package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaginationStyles groups styles for the pagination bar.
type PaginationStyles struct {
	Bar      lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Info     lipgloss.Style
}

// RenderPagination renders the first/prev/info/next/last bar centered in width.
func RenderPagination(p PaginationModel, width int, s PaginationStyles) string {
	button := func(label string, disabled bool) string {
		if disabled {
			return s.Disabled.Render(label)
		}
		return s.Button.Render(label)
	}

	parts := []string{
		button("« g First", p.FirstDisabled),
		button("‹ p Prev", p.PrevDisabled),
		s.Info.Render(p.Info),
		button("n Next ›", p.NextDisabled),
		button("G Last »", p.LastDisabled),
	}
	bar := strings.Join(parts, "  ")
	return s.Bar.Width(max(width, 0)).Align(lipgloss.Center).Render(bar)
}
