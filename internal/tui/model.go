// Package tui provides the terminal user interface for recetario.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/javiermolinar/recetario/internal/api"
	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/config"
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/theme"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch      // typing into the search line
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone   ModalType = iota
	ModalDetail           // recipe detail, backed by the controller's DetailView
	ModalRecent           // recently viewed recipes
	ModalHelp
)

// appTitle is shown in the header.
const appTitle = "Recetario"

// Model is the main TUI model.
type Model struct {
	// Dependencies
	fetcher api.Fetcher
	history recipe.HistoryRepository
	config  *config.Config
	log     logr.Logger
	timeout time.Duration
	now     func() time.Time

	// View state owner. Every fetch result goes through it.
	ctrl *browse.Controller

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	mode      Mode
	modalType ModalType

	// Card grid
	cursor   int
	display  view.DisplayModel
	grid     view.Grid
	gridView viewport.Model

	// Detail modal body
	detailView viewport.Model

	// History modal
	recent       []recipe.View
	recentCursor int

	// Components
	search  textinput.Model
	spinner spinner.Model
	overlay OverlayModel

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithHistory records opened recipes in repo and enables the history modal.
func WithHistory(repo recipe.HistoryRepository) ModelOption {
	return func(m *Model) {
		m.history = repo
	}
}

// WithLogger sets the logger used by the model and its controller.
func WithLogger(log logr.Logger) ModelOption {
	return func(m *Model) {
		m.log = log
	}
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model. No request is made until Init runs.
func New(fetcher api.Fetcher, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "title, description or cuisine (/help for commands)"
	ti.CharLimit = 128
	ti.PromptStyle = styles.PromptFocusedStyle
	ti.TextStyle = styles.PromptTextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Cursor.Style = styles.CursorStyle
	ti.Cursor.TextStyle = styles.PromptTextStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	timeout, err := cfg.Timeout()
	if err != nil {
		timeout = 0
	}

	m := Model{
		fetcher:    fetcher,
		config:     cfg,
		log:        logr.Discard(),
		timeout:    timeout,
		now:        time.Now,
		theme:      t,
		styles:     styles,
		mode:       ModeBrowse,
		search:     ti,
		spinner:    sp,
		overlay:    NewOverlayModel(),
		gridView:   viewport.New(0, 0),
		detailView: viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.ctrl = browse.New(browse.Options{
		PageSize:       cfg.Browse.PerPage,
		PageSizes:      cfg.Browse.PageSizes,
		IncludeDetails: cfg.Browse.IncludeDetails,
		Logger:         m.log.WithName("browse"),
	})
	m.overlay.SetBackground(styles.ModalBackdropColor)
	m.layout = m.buildLayoutCache(0, 0)
	m.refreshView()
	return m
}

// Init loads the first page.
func (m Model) Init() tea.Cmd {
	return m.dispatch(browse.Reload{})
}

// State returns the controller's view state.
func (m Model) State() browse.ViewState {
	return m.ctrl.State()
}

// Run starts the TUI.
func Run(fetcher api.Fetcher, cfg *config.Config, opts ...ModelOption) error {
	model := New(fetcher, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
