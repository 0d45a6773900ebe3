package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(m.width, m.height)
		m.resizeViewports()
		m.refreshView()
		m.refreshDetail()
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.PageFetchedMsg:
		return m.handlePageFetched(msg.Result)

	case commands.DetailFetchedMsg:
		applied := m.ctrl.CompleteDetail(msg.Result)
		LogDetailResult(msg.Result, applied)
		if applied {
			if msg.Result.Err != nil {
				m.log.V(1).Info("detail fetch failed, showing summary", "recipe_id", msg.Result.ID, "error", msg.Result.Err.Error())
			}
			m.refreshDetail()
		}
		return m, nil

	case commands.RecentLoadedMsg:
		m.recent = msg.Views
		m.recentCursor = 0
		m.openModal(ModalRecent, "history loaded")
		return m, nil

	case commands.ViewRecordedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "recording view", "recipe_id", msg.RecipeID)
			LogError("recording view", msg.Err)
		}
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other input messages while searching
	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handlePageFetched(res browse.PageResult) (tea.Model, tea.Cmd) {
	applied, next := m.ctrl.CompletePage(res)
	LogPageResult(res, applied)
	if !applied {
		return m, nil
	}
	if next != nil {
		m.refreshView()
		return m, m.fetchCmds(browse.Effect{FetchPage: next}, true)
	}

	if res.Err != nil {
		m.log.Error(res.Err, "loading page", "page", res.Params.Page, "per_page", res.Params.PageSize)
		m.refreshView()
		return m, nil
	}

	if res.ScrollTop {
		m.cursor = 0
		m.gridView.GotoTop()
	}
	m.refreshView()
	return m, nil
}

// dispatch applies an action and turns the resulting effect into commands.
func (m *Model) dispatch(a browse.Action) tea.Cmd {
	wasLoading := m.ctrl.State().Loading
	eff := m.ctrl.Dispatch(a)
	LogAction(a, eff)
	if eff.Changed {
		m.refreshView()
	}
	return m.fetchCmds(eff, wasLoading)
}

// fetchCmds turns the fetches requested by eff into commands. The spinner is
// started unless a page was already loading.
func (m *Model) fetchCmds(eff browse.Effect, wasLoading bool) tea.Cmd {
	var cmds []tea.Cmd
	if eff.FetchPage != nil {
		cmds = append(cmds, commands.FetchPage(m.fetcher, *eff.FetchPage, m.timeout))
		if !wasLoading {
			cmds = append(cmds, m.spinner.Tick)
		}
	}
	if eff.FetchDetail != nil {
		cmds = append(cmds, commands.FetchDetail(m.fetcher, *eff.FetchDetail, m.timeout))
	}
	return tea.Batch(cmds...)
}
