package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW           int
	FooterH          int
	SearchText       string
	SearchFocus      bool
	StatusText       string
	HelpText         string
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	VAlign           lipgloss.Position
	Bg               lipgloss.Color
}

// RenderFooterModel builds footer lines and renders the footer.
func RenderFooterModel(model FooterModel) string {
	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)

	promptStyle := model.PromptStyle
	if model.SearchFocus {
		promptStyle = model.PromptFocusStyle
	}
	searchLine := footerLine(model.InnerW, promptStyle, model.SearchText)

	return RenderFooter(FooterViewState{
		InnerW:     model.InnerW,
		FooterH:    model.FooterH,
		SearchLine: searchLine,
		StatusLine: statusLine,
		HelpLine:   helpLine,
		VAlign:     model.VAlign,
		Bg:         model.Bg,
	})
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
