// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/recetario/internal/logging"
	"github.com/javiermolinar/recetario/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Browse  BrowseConfig  `toml:"browse"`
	UI      UIConfig      `toml:"ui"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// APIConfig holds the recipe API endpoint.
type APIConfig struct {
	BaseURL string `toml:"base_url"` // e.g., "http://localhost:8000"
	Timeout string `toml:"timeout"`  // Go duration, empty for no client timeout
}

// BrowseConfig holds the initial view parameters.
type BrowseConfig struct {
	PerPage        int   `toml:"per_page"`
	PageSizes      []int `toml:"page_sizes"`
	IncludeDetails bool  `toml:"include_details"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath  string `toml:"db_path"`
	History bool   `toml:"history"` // record opened recipes
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// MaxPageSize is the largest per_page the API accepts.
const MaxPageSize = 100

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Browse: BrowseConfig{
			PerPage:        10,
			PageSizes:      []int{5, 10, 20, 50, 100},
			IncludeDetails: false,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Storage: StorageConfig{
			DBPath:  defaultDBPath(),
			History: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "recetario.db"
	}
	return filepath.Join(home, ".local", "share", "recetario", "recetario.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "recetario", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("RECETARIO_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("RECETARIO_TIMEOUT"); v != "" {
		cfg.API.Timeout = v
	}

	if v := os.Getenv("RECETARIO_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("RECETARIO_PER_PAGE must be an integer, got %q", v)
		}
		cfg.Browse.PerPage = n
	}
	if v := os.Getenv("RECETARIO_INCLUDE_DETAILS"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("RECETARIO_INCLUDE_DETAILS must be a boolean, got %q", v)
		}
		cfg.Browse.IncludeDetails = b
	}

	if v := os.Getenv("RECETARIO_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("RECETARIO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("RECETARIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	if len(c.Browse.PageSizes) == 0 {
		return errors.New("browse.page_sizes must not be empty")
	}
	for _, size := range c.Browse.PageSizes {
		if size < 1 || size > MaxPageSize {
			return fmt.Errorf("browse.page_sizes entries must be between 1 and %d, got %d", MaxPageSize, size)
		}
	}
	if !slices.Contains(c.Browse.PageSizes, c.Browse.PerPage) {
		return fmt.Errorf("browse.per_page %d is not one of page_sizes %v", c.Browse.PerPage, c.Browse.PageSizes)
	}

	if c.UI.Theme != "" && !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}

	if c.Storage.History && c.Storage.DBPath == "" {
		return errors.New("db_path must be set when history is enabled")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Timeout parses api.timeout. Empty means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if strings.TrimSpace(c.API.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.API.Timeout))
	if err != nil {
		return 0, fmt.Errorf("api.timeout must be a duration like \"10s\", got %q", c.API.Timeout)
	}
	if d < 0 {
		return 0, fmt.Errorf("api.timeout must not be negative, got %q", c.API.Timeout)
	}
	return d, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
