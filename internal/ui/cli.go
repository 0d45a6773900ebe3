package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/recetario/internal/api"
	"github.com/javiermolinar/recetario/internal/config"
	"github.com/javiermolinar/recetario/internal/db"
	"github.com/javiermolinar/recetario/internal/logging"
	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// HistoryStore is the history repository the CLI can also clear.
type HistoryStore interface {
	recipe.HistoryRepository
	ClearViews(ctx context.Context) (int64, error)
}

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	fetcher    api.Fetcher
	history    HistoryStore
	log        *logging.Logger
	out        io.Writer
	root       *cobra.Command
	debug      bool // Enable debug logging

	// closers are resources the App opened itself.
	closers []func() error
}

// AppOption configures an App.
type AppOption func(*App)

// WithFetcher uses f instead of an HTTP client built from the config.
func WithFetcher(f api.Fetcher) AppOption {
	return func(a *App) { a.fetcher = f }
}

// WithHistoryStore uses store instead of opening the configured database.
func WithHistoryStore(store HistoryStore) AppOption {
	return func(a *App) { a.history = store }
}

// WithOutput redirects command output to w.
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

// WithConfigPath sets the file `config --init` writes to.
func WithConfigPath(path string) AppOption {
	return func(a *App) { a.configPath = path }
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "recetario",
		Short: "Browse a recipe API from the terminal",
		Long: `Recetario browses a paginated recipe API.

Run without arguments to open the interactive browser, or use the
subcommands to print pages and recipes for scripts.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}
	a.root.SetOut(a.out)

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.recentCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "recetario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Close releases everything the App opened.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func (a *App) runTUI() error {
	if err := tui.InitDebugLogger(a.debug); err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	defer tui.CloseDebugLogger()

	fetcher, err := a.fetcherWith(tui.DebugLogr("api"))
	if err != nil {
		return err
	}

	opts := []tui.ModelOption{tui.WithLogger(tui.DebugLogr("tui"))}
	store, err := a.historyStore()
	if err != nil {
		tui.LogError("history", err)
	} else if store != nil {
		opts = append(opts, tui.WithHistory(store))
	}

	return tui.Run(fetcher, a.config, opts...)
}

// logger returns the CLI logger, writing JSON to stderr at the configured level.
func (a *App) logger() *logging.Logger {
	if a.log != nil {
		return a.log
	}
	log, err := logging.New(os.Stderr, a.config.Log.Level)
	if err != nil {
		log = logging.Nop()
	}
	a.log = log
	a.closers = append(a.closers, log.Sync)
	return log
}

// commandContext returns ctx carrying the CLI logger.
func (a *App) commandContext(ctx context.Context, component string) context.Context {
	return logging.WithLogger(ctx, a.logger().Named(component))
}

func (a *App) client() (api.Fetcher, error) {
	return a.fetcherWith(a.logger().Named("api"))
}

func (a *App) fetcherWith(log logr.Logger) (api.Fetcher, error) {
	if a.fetcher != nil {
		return a.fetcher, nil
	}
	timeout, err := a.config.Timeout()
	if err != nil {
		return nil, err
	}
	c, err := api.NewClient(a.config.API.BaseURL, api.WithTimeout(timeout), api.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}
	a.fetcher = c
	return c, nil
}

// historyStore opens the history database on first use. It returns nil
// when history is disabled.
func (a *App) historyStore() (HistoryStore, error) {
	if a.history != nil {
		return a.history, nil
	}
	if !a.config.Storage.History {
		return nil, nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	a.history = store
	a.closers = append(a.closers, store.Close)
	return store, nil
}
