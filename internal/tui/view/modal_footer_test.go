package view

import (
	"strings"
	"testing"
)

func TestDetailFooterShowsCopyOnlyWithURL(t *testing.T) {
	styles := ModalStyles{}

	withURL := DetailFooter(true, styles)
	if !strings.Contains(withURL, "[y] Copy URL") {
		t.Fatalf("expected copy button when the recipe has a source, got %q", withURL)
	}

	withoutURL := DetailFooter(false, styles)
	if strings.Contains(withoutURL, "Copy URL") {
		t.Fatalf("expected no copy button without a source, got %q", withoutURL)
	}
	if !strings.Contains(withoutURL, "[Esc] Close") {
		t.Fatalf("expected close button, got %q", withoutURL)
	}
}

func TestRecentFooterListsOpen(t *testing.T) {
	footer := RecentFooter(ModalStyles{})
	if !strings.Contains(footer, "[Enter] Open") {
		t.Fatalf("expected open button in recent footer, got %q", footer)
	}
}
