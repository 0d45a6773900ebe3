package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBadgeStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// ModalFrame is the content of one popup.
type ModalFrame struct {
	Title string
	// Badge follows the title, e.g. the recipe cuisine or a loading marker.
	Badge  string
	Body   string
	Footer string
}

// RenderModal renders f inside the modal border.
func RenderModal(f ModalFrame, styles ModalStyles) string {
	title := f.Title
	if title == "" {
		title = "Recipe"
	}
	header := styles.ModalTitleStyle.Render(title)
	if f.Badge != "" {
		header += styles.ModalBodyStyle.Render(" ") + styles.ModalBadgeStyle.Render(f.Badge)
	}

	sections := []string{styles.ModalHeaderStyle.Render(header)}
	if f.Body != "" {
		sections = append(sections, f.Body)
	}
	if f.Footer != "" {
		sections = append(sections, styles.ModalFooterStyle.Render(f.Footer))
	}
	return styles.ModalStyle.Render(strings.Join(sections, "\n\n"))
}

// ButtonRow renders footer buttons with the first one highlighted. Compact
// rows pad each label by one cell instead of relying on the button style.
func ButtonRow(styles ModalStyles, compact bool, labels ...string) string {
	button, active := styles.ModalButtonStyle, styles.ModalButtonActiveStyle
	if compact {
		button, active = button.Padding(0, 1), active.Padding(0, 1)
	}

	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == 0 {
			parts[i] = active.Render(label)
			continue
		}
		parts[i] = button.Render(label)
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}
