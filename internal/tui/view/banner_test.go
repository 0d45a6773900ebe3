package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderErrorBanner(t *testing.T) {
	if got := RenderErrorBanner("", 80, BannerStyles{}); got != "" {
		t.Fatalf("expected no banner without an error, got %q", got)
	}

	out := ansi.Strip(RenderErrorBanner("list recipes: request failed", 80, BannerStyles{}))
	for _, want := range []string{"list recipes: request failed", "[x] dismiss", "[r] retry"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}

	narrow := ansi.Strip(RenderErrorBanner(strings.Repeat("boom ", 30), 20, BannerStyles{}))
	if w := ansi.StringWidth(narrow); w > 20 {
		t.Fatalf("banner width %d exceeds 20", w)
	}
}

func TestRenderEmptyStateSearchHint(t *testing.T) {
	search := ansi.Strip(RenderEmptyState(DisplayModel{Empty: EmptySearch, Message: `No recipes found for "x"`}, 60, 10, BannerStyles{}))
	if !strings.Contains(search, "[esc] clear search") {
		t.Fatalf("expected clear hint in search empty state")
	}

	page := ansi.Strip(RenderEmptyState(DisplayModel{Empty: EmptyPage, Message: "No recipes found."}, 60, 10, BannerStyles{}))
	if !strings.Contains(page, "No recipes found.") || strings.Contains(page, "clear search") {
		t.Fatalf("unexpected page empty state: %q", page)
	}
}

func TestRenderHeaderShowsParams(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderModel{
		Title:          "Recetario",
		PageSize:       20,
		IncludeDetails: true,
		SearchTerm:     "taco",
	}, 100, HeaderStyles{}))
	for _, want := range []string{"Recetario", "20 per page", "details on", `filter "taco"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "loading") {
		t.Fatalf("did not expect loading marker")
	}

	loading := ansi.Strip(RenderHeader(HeaderModel{Title: "Recetario", PageSize: 10, Loading: true, Spinner: "*"}, 100, HeaderStyles{}))
	if !strings.Contains(loading, "* loading") {
		t.Fatalf("expected loading marker in %q", loading)
	}
}

func TestRenderFooterStacksLines(t *testing.T) {
	out := ansi.Strip(RenderFooterModel(FooterModel{
		InnerW:     40,
		FooterH:    3,
		SearchText: "/ pasta",
		StatusText: "Copied URL to clipboard",
		HelpText:   "? help",
	}))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 footer lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "/ pasta") || !strings.Contains(lines[1], "Copied") || !strings.Contains(lines[2], "? help") {
		t.Fatalf("unexpected footer: %q", lines)
	}
}

func TestRenderFrameWithoutSize(t *testing.T) {
	if got := Render(Frame{}); got != "Loading..." {
		t.Fatalf("Render() = %q", got)
	}
	if got := Render(Frame{Width: 10, Height: 2, BaseContent: "base"}); got != "base" {
		t.Fatalf("Render() = %q", got)
	}
}
