package tui

import (
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// refreshView rebuilds the display model and card grid from the controller
// state. Call it after any change that can alter what the grid shows.
func (m *Model) refreshView() {
	st := m.ctrl.State()
	m.display = view.BuildDisplay(st.Loaded, st.Filtered(), st.IncludeDetails, st.SearchTerm)
	m.clampCursor()

	if m.display.Empty != view.EmptyNone || m.layout.InnerW <= 0 {
		m.grid = view.Grid{}
		m.gridView.SetContent("")
		return
	}

	m.grid = view.RenderGrid(m.display.Cards, m.layout.InnerW, m.cursor, m.styles.cardStyles())
	m.gridView.SetContent(m.grid.Content)
	m.ensureCursorVisible()
}

// refreshDetail re-renders the detail modal body from the open DetailView.
func (m *Model) refreshDetail() {
	dv := m.ctrl.State().Detail
	if dv == nil {
		m.detailView.SetContent("")
		return
	}
	w, maxH := m.detailBodySize()
	m.detailView.Width = w
	body := view.RenderDetailBody(view.BuildDetail(dv.Record), w, dv.Loading, m.styles.modalStyleSet().DetailStyles())
	m.detailView.SetContent(body)
	m.detailView.Height = max(1, min(m.detailView.TotalLineCount(), maxH))
}

func (m *Model) clampCursor() {
	n := len(m.display.Cards)
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(m.cursor, n-1))
}

// ensureCursorVisible scrolls the grid so the selected card's row is in view.
func (m *Model) ensureCursorVisible() {
	if len(m.grid.RowStart) == 0 || m.gridView.Height <= 0 {
		return
	}
	row := min(m.grid.RowOf(m.cursor), len(m.grid.RowStart)-1)
	top := m.grid.RowStart[row]
	bottom := m.gridView.TotalLineCount()
	if row+1 < len(m.grid.RowStart) {
		bottom = m.grid.RowStart[row+1]
	}

	switch {
	case top < m.gridView.YOffset:
		m.gridView.SetYOffset(top)
	case bottom > m.gridView.YOffset+m.gridView.Height:
		m.gridView.SetYOffset(max(top, bottom-m.gridView.Height))
	}
}

// selected returns the record under the cursor in the filtered list.
func (m Model) selected() (recipe.Summary, bool) {
	filtered := m.ctrl.State().Filtered()
	if m.cursor < 0 || m.cursor >= len(filtered) {
		return recipe.Summary{}, false
	}
	return filtered[m.cursor], true
}
