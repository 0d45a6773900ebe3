package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/javiermolinar/recetario/internal/browse"
)

func TestDebugLoggerDisabled(t *testing.T) {
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	if DebugLogr("api").GetSink() != nil {
		t.Fatalf("expected a discarding logger when debug is off")
	}
	// Must not panic without a logger.
	LogError("test", errors.New("boom"))
	CloseDebugLogger()
}

func TestDebugLoggerWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := InitDebugLogger(true); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	LogModeChange(ModeBrowse, ModeSearch, "focus search")
	LogAction(browse.ChangePage{Page: 2}, browse.Effect{
		Changed:   true,
		FetchPage: &browse.PageFetch{Seq: 3, Params: browse.Params{Page: 2, PageSize: 10}},
	})
	LogPageResult(browse.PageResult{PageFetch: browse.PageFetch{Seq: 2}}, false)
	DebugLogr("api").Info("request", "path", "/api/recipes")
	CloseDebugLogger()

	data, err := os.ReadFile(DebugLogPath)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"mode change"`, `"change_page"`, `"page_seq":3`, `"stale page result"`, `"component":"api"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in debug log:\n%s", want, out)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeBrowse: "Browse",
		ModeSearch: "Search",
		ModeModal:  "Modal",
		Mode(9):    "Unknown(9)",
	}
	for mode, want := range tests {
		if got := modeString(mode); got != want {
			t.Fatalf("modeString(%d) = %q, want %q", mode, got, want)
		}
	}
}
