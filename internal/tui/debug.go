package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/javiermolinar/recetario/internal/browse"
	"github.com/javiermolinar/recetario/internal/logging"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "recetario-debug.log"

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	logger *logging.Logger
	log    logr.Logger
}

// Global debug logger instance
var debugLog *DebugLogger

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = nil
		return nil
	}

	l, err := logging.NewFile(DebugLogPath, "debug")
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		logger: l,
		log:    l.Named("tui"),
	}
	debugLog.log.Info("debug start", "log_file", DebugLogPath)
	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.log.Info("debug end")
	_ = debugLog.logger.Close()
	debugLog = nil
}

// DebugLogr returns the debug logger for other components, or a discarding one.
func DebugLogr(component string) logr.Logger {
	if debugLog == nil {
		return logr.Discard()
	}
	return debugLog.logger.Named(component)
}

func debugEnabled() bool {
	return debugLog != nil
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	if !debugEnabled() {
		return
	}
	debugLog.log.V(1).Info("key press", "key", msg.String(), "mode", modeString(mode))
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() || from == to {
		return
	}
	debugLog.log.Info("mode change", "from", modeString(from), "to", modeString(to), "reason", reason)
}

// LogAction logs a dispatched action and the effect it produced.
func LogAction(a browse.Action, eff browse.Effect) {
	if !debugEnabled() {
		return
	}
	kv := []any{"action", browse.ActionName(a), "changed", eff.Changed}
	if eff.FetchPage != nil {
		p := eff.FetchPage.Params
		kv = append(kv, "page_seq", eff.FetchPage.Seq, "page", p.Page, "per_page", p.PageSize, "details", p.IncludeDetails)
	}
	if eff.FetchDetail != nil {
		kv = append(kv, "detail_seq", eff.FetchDetail.Seq, "recipe_id", eff.FetchDetail.ID)
	}
	debugLog.log.Info("action", kv...)
}

// LogPageResult logs a finished page request and whether it was applied.
func LogPageResult(res browse.PageResult, applied bool) {
	if !debugEnabled() {
		return
	}
	kv := []any{"seq", res.Seq, "page", res.Params.Page, "applied", applied}
	if res.Err != nil {
		kv = append(kv, "error", res.Err.Error())
	}
	if !applied {
		debugLog.log.Info("stale page result", kv...)
		return
	}
	debugLog.log.Info("page result", kv...)
}

// LogDetailResult logs a finished detail request and whether it was applied.
func LogDetailResult(res browse.DetailResult, applied bool) {
	if !debugEnabled() {
		return
	}
	kv := []any{"seq", res.Seq, "recipe_id", res.ID, "applied", applied}
	if res.Err != nil {
		kv = append(kv, "error", res.Err.Error())
	}
	debugLog.log.Info("detail result", kv...)
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.log.Error(err, context)
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeSearch:
		return "Search"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
