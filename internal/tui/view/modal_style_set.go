// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	TagStyle          lipgloss.Style
	LabelStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	LinkStyle         lipgloss.Style
	RatingStyle       lipgloss.Style
	TimeStyle         lipgloss.Style
	SelectedStyle     lipgloss.Style
	BorderStyle       lipgloss.Style
}

// DetailStyles returns the modal styles needed for the recipe detail body.
func (s ModalStyleSet) DetailStyles() DetailStyles {
	return DetailStyles{
		Body:          s.BodyStyle,
		Rating:        s.RatingStyle,
		Time:          s.TimeStyle,
		Badge:         s.TagStyle,
		Meta:          s.MetaStyle,
		SectionTitle:  s.SectionTitleStyle,
		Label:         s.LabelStyle,
		Link:          s.LinkStyle,
		Hint:          s.HintStyle,
		NutrientLabel: s.LabelStyle,
	}
}

// RecentStyles returns the modal styles needed for the history table.
func (s ModalStyleSet) RecentStyles() RecentStyles {
	return RecentStyles{
		Header:   s.SectionTitleStyle,
		Cell:     s.BodyStyle,
		Selected: s.SelectedStyle,
		Muted:    s.MetaStyle,
		Border:   s.BorderStyle,
	}
}
