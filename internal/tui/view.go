package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/recetario/internal/tui/input"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.frame())
}

func (m Model) frame() view.Frame {
	f := view.Frame{
		Width:            m.width,
		Height:           m.height,
		MinWidth:         minWindowW,
		MinHeight:        minWindowH,
		EmptyPlaceholder: "Loading recipes...",
	}
	if f.Width == 0 || f.Height == 0 || f.TooSmall() {
		return f
	}

	f.BaseContent = m.renderAppContent()
	f.ShowModal = m.mode == ModeModal && m.modalType != ModalNone
	m.overlay.active = f.ShowModal
	if f.ShowModal {
		f.ModalContent = m.renderModal()
	}
	f.Overlay = m.overlay
	return f
}

func (m Model) renderAppContent() string {
	layout := m.layout
	st := m.ctrl.State()

	header := view.RenderHeader(view.HeaderModel{
		Title:          appTitle,
		PageSize:       st.PageSize,
		IncludeDetails: st.IncludeDetails,
		SearchTerm:     st.SearchTerm,
		Spinner:        m.spinner.View(),
		Loading:        st.Loading,
	}, layout.InnerW, m.styles.headerStyles())

	banner := m.placeBox(layout.InnerW, layout.BannerH, lipgloss.Top, "")
	if st.Err != nil {
		banner = view.RenderErrorBanner(st.Err.Error(), layout.InnerW, m.styles.bannerStyles())
	}

	var body string
	switch {
	case !st.Ready && st.Err == nil:
		body = m.placeCentered(layout.InnerW, layout.GridH, m.spinner.View()+" Loading recipes...")
	case !st.Ready:
		body = m.placeCentered(layout.InnerW, layout.GridH, "No recipes loaded. Press r to retry.")
	case m.display.Empty != view.EmptyNone:
		body = view.RenderEmptyState(m.display, layout.InnerW, layout.GridH, m.styles.bannerStyles())
	default:
		body = m.placeBox(layout.InnerW, layout.GridH, lipgloss.Top, m.gridView.View())
	}

	pagination := ""
	if st.Ready {
		pagination = view.RenderPagination(view.BuildPagination(st.Pagination, st.Page), layout.InnerW, m.styles.paginationStyles())
	}
	pagination = m.placeBox(layout.InnerW, layout.PaginationH, lipgloss.Top, pagination)

	footer := view.RenderFooterModel(m.footerModel(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, header, banner, body, pagination, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) placeCentered(w, h int, content string) string {
	return view.PlaceCentered(w, h, m.styles.EmptyHintStyle.Render(content), m.styles.colorBg)
}

func (m Model) footerModel(layout LayoutCache) view.FooterModel {
	searchText := m.search.View()
	if m.mode != ModeSearch {
		searchText = "/ search  : command"
		if term := m.ctrl.State().SearchTerm; term != "" {
			searchText = "Search: " + term + "  (esc clears)"
		}
	}

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		SearchText:       searchText,
		SearchFocus:      m.mode == ModeSearch,
		StatusText:       m.statusText(),
		HelpText:         m.helpText(),
		StatusStyle:      layout.StatusStyle,
		HelpStyle:        layout.HelpStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}

// statusText returns the status message, a command hint while typing one,
// or a space to preserve layout.
func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.mode == ModeSearch {
		if hint := input.Hint(m.search.Value(), searchCommands); hint != "" {
			return hint
		}
	}
	return " "
}

// helpText returns the key hints for the current mode.
func (m Model) helpText() string {
	switch m.mode {
	case ModeSearch:
		return "enter: apply | tab: complete command | esc: clear"
	case ModeModal:
		switch m.modalType {
		case ModalDetail:
			return "j/k: scroll | y: copy URL | esc: close"
		case ModalRecent:
			return "j/k: move | enter: open | esc: close"
		default:
			return "esc: close"
		}
	default:
		return "j/k: move | n/p: page | +/-: size | d: details | enter: open | /: search | h: history | ?: keys | q: quit"
	}
}
