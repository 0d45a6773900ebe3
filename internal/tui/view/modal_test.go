package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderModal_TitleBadgeBodyFooter(t *testing.T) {
	out := ansi.Strip(RenderModal(ModalFrame{
		Title:  "Pad Thai",
		Badge:  "Thai",
		Body:   "Ingredients (2)",
		Footer: DetailFooter(true, ModalStyles{}),
	}, ModalStyles{}))

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	if len(lines) != 5 {
		t.Fatalf("expected header, body and footer separated by blank lines, got %q", out)
	}
	if lines[0] != "Pad Thai Thai" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[2] != "Ingredients (2)" {
		t.Fatalf("body = %q", lines[2])
	}
	if lines[1] != "" || lines[3] != "" {
		t.Fatalf("expected blank separators, got %q", out)
	}
	if !strings.Contains(lines[4], "[y] Copy URL") {
		t.Fatalf("footer = %q", lines[4])
	}
}

func TestRenderModal_UntitledRecipe(t *testing.T) {
	out := ansi.Strip(RenderModal(ModalFrame{}, ModalStyles{}))
	if out != "Recipe" {
		t.Fatalf("expected only the fallback title, got %q", out)
	}
}

func TestButtonRow_HighlightsFirstButton(t *testing.T) {
	styles := ModalStyles{
		ModalBodyStyle:         lipgloss.NewStyle(),
		ModalButtonStyle:       lipgloss.NewStyle(),
		ModalButtonActiveStyle: lipgloss.NewStyle().Bold(true),
	}

	row := ButtonRow(styles, false, "[Enter] Open", "[Esc] Close")
	if got := ansi.Strip(row); got != "[Enter] Open [Esc] Close" {
		t.Fatalf("row = %q", got)
	}

	compact := ansi.Strip(ButtonRow(styles, true, "[Enter] Open", "[Esc] Close"))
	if compact != " [Enter] Open   [Esc] Close " {
		t.Fatalf("compact row = %q", compact)
	}
}
