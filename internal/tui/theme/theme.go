// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

const defaultTheme = "mocha"

var themeNames = []string{"mocha", "macchiato", "frappe", "latte", "light"}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme holds all colors for a TUI theme. Every color is a #rrggbb string.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cards, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Descriptions, disabled controls
	Accent      string `toml:"accent"`       // Title, primary accent, borders
	Rating      string `toml:"rating"`       // Star rating
	Cuisine     string `toml:"cuisine"`      // Cuisine badge text
	Time        string `toml:"time"`         // Prep/cook/total time chips
	Error       string `toml:"error"`        // Error banner text
	Warning     string `toml:"warning"`      // Empty states, search prompt

	// Optional recipe surfaces. When empty they are derived from the base
	// colors by NewPalette.
	CardBg         string `toml:"card_bg"`
	CardSelectedBg string `toml:"card_selected_bg"`
	BadgeBg        string `toml:"badge_bg"`
	BannerBg       string `toml:"banner_bg"`

	// Modal colors, defaulted from the base colors on load.
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Load loads a theme by name from the embedded files. Unknown names fall
// back to mocha.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = defaultTheme
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BaseBg = coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	t.ModalBorder = coalesce(t.ModalBorder, t.Accent)
	t.TextPrimary = coalesce(t.TextPrimary, t.Fg)
	t.TextMuted = coalesce(t.TextMuted, t.FgMuted)
	t.Highlight = coalesce(t.Highlight, t.BgSelection, t.Accent)
}

// validate checks that required colors are set and that every set color,
// optional ones included, is a #rrggbb value.
func (t *Theme) validate() error {
	required := []struct{ key, value string }{
		{"bg", t.Bg}, {"bg_highlight", t.BgHighlight}, {"bg_selection", t.BgSelection},
		{"fg", t.Fg}, {"fg_muted", t.FgMuted}, {"accent", t.Accent},
		{"rating", t.Rating}, {"cuisine", t.Cuisine}, {"time", t.Time},
		{"error", t.Error}, {"warning", t.Warning},
	}
	for _, c := range required {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("%s = %q is not a #rrggbb color", c.key, c.value)
		}
	}

	optional := []struct{ key, value string }{
		{"card_bg", t.CardBg}, {"card_selected_bg", t.CardSelectedBg},
		{"badge_bg", t.BadgeBg}, {"banner_bg", t.BannerBg},
	}
	for _, c := range optional {
		if c.value != "" && !hexColor.MatchString(c.value) {
			return fmt.Errorf("%s = %q is not a #rrggbb color", c.key, c.value)
		}
	}
	return nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the names of the embedded themes.
func Available() []string {
	return slices.Clone(themeNames)
}

// IsAvailable reports whether a theme name is available. Case is ignored.
func IsAvailable(name string) bool {
	return slices.Contains(themeNames, strings.ToLower(name))
}
