package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Rating:      "#ffcc00",
		Cuisine:     "#112233",
		Time:        "#445566",
		Error:       "#ee4444",
		Warning:     "#888888",
	}
}

func TestNewPalette_CardShades(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	if palette.CardBg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("CardBg = %q, want %q", palette.CardBg, base.BgHighlight)
	}
	if palette.CardBgAlt != lipgloss.Color(alternateShade(base.BgHighlight, false)) {
		t.Fatalf("CardBgAlt = %q, want %q", palette.CardBgAlt, alternateShade(base.BgHighlight, false))
	}
	if palette.CardSelectedBg != lipgloss.Color(darkenColor(base.Accent)) {
		t.Fatalf("CardSelectedBg = %q, want %q", palette.CardSelectedBg, darkenColor(base.Accent))
	}
	if palette.CuisineBg != lipgloss.Color(darkenColor(base.Cuisine)) {
		t.Fatalf("CuisineBg = %q, want %q", palette.CuisineBg, darkenColor(base.Cuisine))
	}
	if palette.ErrorBg != lipgloss.Color(muteColor(base.Error)) {
		t.Fatalf("ErrorBg = %q, want %q", palette.ErrorBg, muteColor(base.Error))
	}
}

func TestNewPalette_RecipeSurfaceOverrides(t *testing.T) {
	base := darkTheme()
	base.CardBg = "#0a0a0a"
	base.CardSelectedBg = "#1b1b1b"
	base.BadgeBg = "#2c2c2c"
	base.BannerBg = "#3d3d3d"

	palette := NewPalette(base)
	if palette.CardBg != "#0a0a0a" || palette.CardSelectedBg != "#1b1b1b" {
		t.Fatalf("card colors = %q/%q, want the overrides", palette.CardBg, palette.CardSelectedBg)
	}
	if palette.CuisineBg != "#2c2c2c" {
		t.Fatalf("CuisineBg = %q, want badge_bg", palette.CuisineBg)
	}
	if palette.ErrorBg != "#3d3d3d" {
		t.Fatalf("ErrorBg = %q, want banner_bg", palette.ErrorBg)
	}
	if palette.CardBgAlt != lipgloss.Color(alternateShade("#0a0a0a", false)) {
		t.Fatalf("CardBgAlt = %q, want a shade of card_bg", palette.CardBgAlt)
	}
	if base.BaseBg != "" {
		t.Fatalf("NewPalette must not modify the theme")
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := darkTheme()

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
}

func TestNewPalette_LightThemeInvertsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Rating:      "#b58900",
		Cuisine:     "#1d8a8a",
		Time:        "#2f8f2f",
		Error:       "#c2410c",
		Warning:     "#c97b00",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.CuisineBg)) <= relativeLuminance(base.Cuisine) {
		t.Fatalf("CuisineBg luminance = %f, want greater than Cuisine", relativeLuminance(string(palette.CuisineBg)))
	}
	if relativeLuminance(string(palette.CardSelectedBg)) <= relativeLuminance(base.Accent) {
		t.Fatalf("CardSelectedBg luminance = %f, want greater than Accent", relativeLuminance(string(palette.CardSelectedBg)))
	}
}

func TestNewPalette_NilUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Fatalf("Bg = %q, want mocha base", palette.Bg)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
