package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants for boxed rendering.
const (
	headerLines     = 1
	bannerLines     = 1 // error banner, blank when there is no error
	paginationLines = 1
	footerLines     = 3 // search(1) + status(1) + help(1)

	chromeLines = headerLines + bannerLines + paginationLines + footerLines
	minGridH    = 3

	// Smallest window the browser is drawn in.
	minWindowW = 24
	minWindowH = chromeLines + minGridH + 2

	// Lines the modal frame adds around the detail body: border, padding,
	// title, footer and their spacing.
	modalChromeLines = 10
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH     int
	BannerH     int
	GridH       int
	PaginationH int
	FooterH     int

	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	gridH := max(innerH-chromeLines, minGridH)

	lineStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		HeaderH:            headerLines,
		BannerH:            bannerLines,
		GridH:              gridH,
		PaginationH:        paginationLines,
		FooterH:            footerLines,
		StatusStyle:        styles.StatusStyle.Inherit(lineStyle),
		HelpStyle:          styles.HelpStyle.Inherit(lineStyle),
		PromptStyle:        styles.PromptStyle.Inherit(lineStyle),
		PromptFocusedStyle: styles.PromptFocusedStyle.Inherit(lineStyle),
	}
}

// detailBodySize returns the viewport size for the detail modal body.
func (m Model) detailBodySize() (int, int) {
	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	w := modalWidth - frameW
	if m.width > 0 {
		w = min(w, m.width-frameW-4)
	}
	h := max(m.height-modalChromeLines, 3)
	return max(w, 10), h
}

// resizeViewports applies the current layout to the grid and detail viewports.
func (m *Model) resizeViewports() {
	m.gridView.Width = m.layout.InnerW
	m.gridView.Height = m.layout.GridH

	w, h := m.detailBodySize()
	m.detailView.Width = w
	m.detailView.Height = h
}
