package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel holds the header content.
type HeaderModel struct {
	Title          string
	PageSize       int
	IncludeDetails bool
	SearchTerm     string
	Spinner        string
	Loading        bool
}

// HeaderStyles groups styles for the header.
type HeaderStyles struct {
	Bar   lipgloss.Style
	Title lipgloss.Style
	Meta  lipgloss.Style
}

// RenderHeader renders the title line with the current view parameters.
func RenderHeader(h HeaderModel, width int, s HeaderStyles) string {
	details := "off"
	if h.IncludeDetails {
		details = "on"
	}
	meta := fmt.Sprintf("%d per page · details %s", h.PageSize, details)
	if h.SearchTerm != "" {
		meta += fmt.Sprintf(" · filter %q", h.SearchTerm)
	}
	if h.Loading {
		meta = h.Spinner + " loading · " + meta
	}

	left := s.Title.Render(h.Title)
	right := s.Meta.Render(meta)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.Bar.Width(max(width, 0)).Render(left + s.Bar.Render(strings.Repeat(" ", gap)) + right)
}
