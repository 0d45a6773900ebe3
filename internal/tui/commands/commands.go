// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/recetario/internal/api"
	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/recipe"
)

// PageFetchedMsg is sent when a page request finishes, successfully or not.
type PageFetchedMsg struct {
	Result browse.PageResult
}

// DetailFetchedMsg is sent when a detail request finishes.
type DetailFetchedMsg struct {
	Result browse.DetailResult
}

// RecentLoadedMsg is sent when the recently viewed list is ready.
type RecentLoadedMsg struct {
	Views []recipe.View
}

// ViewRecordedMsg is sent after a history write. Err is logged, never shown.
type ViewRecordedMsg struct {
	RecipeID int64
	Err      error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// FetchPage runs the page request described by req.
func FetchPage(fetcher api.Fetcher, req browse.PageFetch, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		page, err := fetcher.FetchPage(ctx, api.PageRequest{
			Page:           req.Params.Page,
			PerPage:        req.Params.PageSize,
			IncludeDetails: req.Params.IncludeDetails,
		})
		return PageFetchedMsg{Result: browse.PageResult{PageFetch: req, Page: page, Err: err}}
	}
}

// FetchDetail runs the detail request described by req.
func FetchDetail(fetcher api.Fetcher, req browse.DetailFetch, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		detail, err := fetcher.FetchDetail(ctx, req.ID)
		return DetailFetchedMsg{Result: browse.DetailResult{DetailFetch: req, Detail: detail, Err: err}}
	}
}

// RecordView appends r to the history store.
func RecordView(repo recipe.HistoryRepository, r recipe.Summary, at time.Time) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		err := repo.RecordView(context.Background(), r, at)
		return ViewRecordedMsg{RecipeID: r.ID, Err: err}
	}
}

// LoadRecent loads the most recently viewed recipes.
func LoadRecent(repo recipe.HistoryRepository, limit int) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: errors.New("history is disabled")}
		}
		views, err := repo.RecentViews(context.Background(), limit)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading history: %w", err)}
		}
		return RecentLoadedMsg{Views: views}
	}
}

// StatusCmd shows msg in the status line.
func StatusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: fmt.Sprintf("No %s to copy", what)}
		}
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying %s: %w", what, err)}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Copied %s to clipboard", what)}
	}
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}
