package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/commands"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

var helpBindings = [][2]string{
	{"j/k ↑/↓", "move between cards"},
	{"n/p →/←", "next / previous page"},
	{"g/G", "first / last page"},
	{"+/-", "bigger / smaller pages"},
	{"d", "toggle ingredients and instructions"},
	{"/", "search (enter applies, esc clears)"},
	{":", "command line (/page, /size, /details)"},
	{"enter", "open recipe"},
	{"y", "copy source URL (in recipe)"},
	{"x", "dismiss error"},
	{"r", "reload page"},
	{"h", "recently viewed"},
	{"q", "quit"},
}

func (m *Model) openModal(t ModalType, reason string) {
	LogModeChange(m.mode, ModeModal, reason)
	m.mode = ModeModal
	m.modalType = t
}

func (m *Model) closeModal(reason string) {
	LogModeChange(m.mode, ModeBrowse, reason)
	m.mode = ModeBrowse
	m.modalType = ModalNone
}

// openSelected opens the detail modal for the card under the cursor.
func (m *Model) openSelected() tea.Cmd {
	r, ok := m.selected()
	if !ok {
		return nil
	}
	return m.openRecord(r)
}

// openRecord opens the detail modal for r and records the view.
func (m *Model) openRecord(r recipe.Summary) tea.Cmd {
	cmd := m.dispatch(browse.OpenDetail{Record: r})
	m.openModal(ModalDetail, "open detail")
	m.detailView.GotoTop()
	m.refreshDetail()
	return tea.Batch(cmd, commands.RecordView(m.history, r, m.now()))
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalDetail:
		return m.renderDetailModal()
	case ModalRecent:
		return m.renderRecentModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalBadgeStyle:        m.styles.ModalTagStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

// renderDetailModal renders the recipe detail popup.
func (m Model) renderDetailModal() string {
	dv := m.ctrl.State().Detail
	if dv == nil {
		return ""
	}
	badge := dv.Record.Cuisine
	if dv.Loading {
		badge = "loading"
	}
	return view.RenderModal(view.ModalFrame{
		Title:  dv.Record.Title,
		Badge:  badge,
		Body:   m.detailView.View(),
		Footer: view.DetailFooter(dv.Record.URL != "", m.modalStyles()),
	}, m.modalStyles())
}

// renderRecentModal renders the recently viewed table.
func (m Model) renderRecentModal() string {
	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	body := view.RenderRecentTable(m.recent, m.now(), modalWidth-frameW, m.recentCursor, m.styles.modalStyleSet().RecentStyles())
	badge := ""
	if n := len(m.recent); n > 0 {
		badge = strconv.Itoa(n)
	}
	return view.RenderModal(view.ModalFrame{
		Title:  "Recently Viewed",
		Badge:  badge,
		Body:   body,
		Footer: view.RecentFooter(m.modalStyles()),
	}, m.modalStyles())
}

// renderHelpModal renders the key bindings.
func (m Model) renderHelpModal() string {
	keyW := 0
	for _, b := range helpBindings {
		keyW = max(keyW, runewidth.StringWidth(b[0]))
	}
	lines := make([]string, 0, len(helpBindings))
	for _, b := range helpBindings {
		lines = append(lines, m.styles.ModalLabelStyle.Render(runewidth.FillRight(b[0], keyW))+
			m.styles.ModalBodyStyle.Render("  "+b[1]))
	}
	return view.RenderModal(view.ModalFrame{
		Title:  "Keys",
		Body:   strings.Join(lines, "\n"),
		Footer: view.HelpFooter(m.modalStyles()),
	}, m.modalStyles())
}
