package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/tui/commands"
	"github.com/javiermolinar/recetario/internal/tui/input"
)

// recentLimit is how many entries the history modal lists.
const recentLimit = 20

var searchCommands = []input.Command{
	{Name: "/page", Args: "N", Description: "go to page N"},
	{Name: "/size", Args: "N", Description: "show N recipes per page"},
	{Name: "/details", Args: "on|off", Description: "include ingredients and instructions"},
	{Name: "/reload", Description: "fetch the current page again"},
	{Name: "/recent", Description: "recently viewed recipes"},
	{Name: "/help", Description: "show key bindings"},
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles keys while browsing the card grid.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Card cursor
	case "j", "down", "tab":
		m.moveCursor(1)
		return m, nil
	case "k", "up", "shift+tab":
		m.moveCursor(-1)
		return m, nil
	case "ctrl+d", "pgdown":
		m.moveCursor(max(m.grid.Columns, 1) * 2)
		return m, nil
	case "ctrl+u", "pgup":
		m.moveCursor(-max(m.grid.Columns, 1) * 2)
		return m, nil

	// Pages
	case "n", "right":
		return m, m.dispatch(browse.ChangePage{Page: st.Page + 1})
	case "p", "left":
		return m, m.dispatch(browse.ChangePage{Page: st.Page - 1})
	case "g", "home":
		return m, m.dispatch(browse.ChangePage{Page: 1})
	case "G", "end":
		return m, m.dispatch(browse.ChangePage{Page: st.PageLimit()})

	// View parameters
	case "+", "=":
		return m, m.stepPageSize(1)
	case "-", "_":
		return m, m.stepPageSize(-1)
	case "d":
		return m, m.dispatch(browse.ToggleDetails{Include: !st.IncludeDetails})
	case "r":
		return m, m.dispatch(browse.Reload{})
	case "x":
		return m, m.dispatch(browse.DismissError{})

	case "/":
		return m, m.focusSearch(m.ctrl.State().SearchTerm)
	case ":":
		return m, m.focusSearch("/")
	case "esc":
		if st.SearchTerm != "" {
			m.search.SetValue("")
			return m, m.dispatch(browse.Search{Term: ""})
		}
		return m, nil

	case "enter", " ":
		return m, m.openSelected()
	case "h":
		return m, commands.LoadRecent(m.history, recentLimit)
	case "?":
		m.openModal(ModalHelp, "help key")
		return m, nil
	}

	return m, nil
}

// handleSearchKeys handles keys while the search line has focus.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.search.Value()
		m.blurSearch("submit")
		if inv, ok := input.Parse(value); ok {
			m.search.SetValue("")
			return m, m.runCommand(inv)
		}
		return m, m.dispatch(browse.Search{Term: strings.TrimSpace(value)})

	case "esc":
		m.search.SetValue("")
		m.blurSearch("cancel")
		return m, m.dispatch(browse.Search{Term: ""})

	case "tab":
		if value, ok := input.Autocomplete(m.search.Value(), searchCommands); ok {
			m.search.SetValue(value)
			m.search.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleModalKeys handles keys for the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalDetail:
		return m.handleDetailKeys(msg)
	case ModalRecent:
		return m.handleRecentKeys(msg)
	default:
		switch msg.String() {
		case "esc", "q", "enter", "?":
			m.closeModal("close")
		}
		return m, nil
	}
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter", "backspace":
		m.closeModal("close detail")
		return m, m.dispatch(browse.CloseDetail{})
	case "j", "down":
		m.detailView.ScrollDown(1)
	case "k", "up":
		m.detailView.ScrollUp(1)
	case "ctrl+d", "pgdown", " ":
		m.detailView.ScrollDown(max(m.detailView.Height/2, 1))
	case "ctrl+u", "pgup":
		m.detailView.ScrollUp(max(m.detailView.Height/2, 1))
	case "g", "home":
		m.detailView.GotoTop()
	case "G", "end":
		m.detailView.GotoBottom()
	case "y":
		url := ""
		if dv := m.ctrl.State().Detail; dv != nil {
			url = dv.Record.URL
		}
		return m, commands.CopyToClipboard(url, "source URL")
	}
	return m, nil
}

func (m Model) handleRecentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "h":
		m.closeModal("close history")
	case "j", "down":
		if m.recentCursor < len(m.recent)-1 {
			m.recentCursor++
		}
	case "k", "up":
		if m.recentCursor > 0 {
			m.recentCursor--
		}
	case "enter":
		if m.recentCursor < 0 || m.recentCursor >= len(m.recent) {
			return m, nil
		}
		v := m.recent[m.recentCursor]
		m.closeModal("open from history")
		return m, m.openRecord(v.Summary())
	}
	return m, nil
}

// runCommand executes a slash command typed into the search line.
func (m *Model) runCommand(inv input.Invocation) tea.Cmd {
	st := m.ctrl.State()
	switch inv.Name {
	case "/page", "/p":
		n, err := strconv.Atoi(inv.Arg(0))
		if err != nil || n < 1 || n > st.PageLimit() {
			return commands.StatusCmd("Usage: /page 1-" + strconv.Itoa(st.PageLimit()))
		}
		return m.dispatch(browse.ChangePage{Page: n})

	case "/size", "/s":
		n, err := strconv.Atoi(inv.Arg(0))
		if err != nil || !st.PageSizeAllowed(n) {
			return commands.StatusCmd("Page size must be one of " + joinInts(st.PageSizes))
		}
		return m.dispatch(browse.ChangePageSize{Size: n})

	case "/details", "/d":
		switch strings.ToLower(inv.Arg(0)) {
		case "on", "true", "yes":
			return m.dispatch(browse.ToggleDetails{Include: true})
		case "off", "false", "no":
			return m.dispatch(browse.ToggleDetails{Include: false})
		case "":
			return m.dispatch(browse.ToggleDetails{Include: !st.IncludeDetails})
		default:
			return commands.StatusCmd("Usage: /details on|off")
		}

	case "/reload", "/r":
		return m.dispatch(browse.Reload{})

	case "/recent", "/history":
		return commands.LoadRecent(m.history, recentLimit)

	case "/help", "/?":
		m.openModal(ModalHelp, "help command")
		return nil
	}

	return commands.StatusCmd("Unknown command " + inv.Name)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.display.Cards)
	if n == 0 {
		return
	}
	next := max(0, min(m.cursor+delta, n-1))
	if next == m.cursor {
		return
	}
	m.cursor = next
	m.refreshView()
}

func (m *Model) stepPageSize(dir int) tea.Cmd {
	st := m.ctrl.State()
	size := st.StepPageSize(dir)
	if size == st.PageSize {
		return nil
	}
	return m.dispatch(browse.ChangePageSize{Size: size})
}

func (m *Model) focusSearch(value string) tea.Cmd {
	LogModeChange(m.mode, ModeSearch, "focus search")
	m.mode = ModeSearch
	m.search.SetValue(value)
	m.search.CursorEnd()
	return m.search.Focus()
}

func (m *Model) blurSearch(reason string) {
	LogModeChange(m.mode, ModeBrowse, reason)
	m.mode = ModeBrowse
	m.search.Blur()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
