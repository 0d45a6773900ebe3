package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func baseView(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestOverlayInactiveReturnsBase(t *testing.T) {
	o := NewOverlayModel()
	base := baseView(10, 4)
	if got := o.Render(base, 10, 4, "modal"); got != base {
		t.Fatalf("inactive overlay changed the base view")
	}
}

func TestOverlayCentersContent(t *testing.T) {
	o := NewOverlayModel()
	o.active = true
	o.SetBackground(lipgloss.Color("#11111b"))

	out := o.Render(baseView(20, 7), 20, 7, "hello")
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("lines = %d, want 7", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}

	// 5 wide content plus a 2 column margin gives a 9 wide box at column 5.
	if got := ansi.Strip(lines[3]); got != ".....  hello  ......" {
		t.Fatalf("content line = %q", got)
	}
	if got := ansi.Strip(lines[0]); got != strings.Repeat(".", 20) {
		t.Fatalf("row outside the box changed: %q", got)
	}
	if got := ansi.Strip(lines[2]); got != "....."+strings.Repeat(" ", 9)+"......" {
		t.Fatalf("backdrop line = %q", got)
	}
}

func TestOverlayCutsOversizedContent(t *testing.T) {
	o := NewOverlayModel()
	o.active = true

	content := strings.Repeat("x", 30) + "\n" + strings.Repeat("y", 30)
	out := o.Render(baseView(10, 3), 10, 3, content)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 10 {
			t.Fatalf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestOverlayEmptyContentReturnsBase(t *testing.T) {
	o := NewOverlayModel()
	o.active = true
	base := baseView(10, 4)
	if got := o.Render(base, 10, 4, ""); got != base {
		t.Fatalf("expected base for empty content")
	}
}
