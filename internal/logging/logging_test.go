package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "", want: zapcore.InfoLevel},
		{in: "DEBUG", want: zapcore.DebugLevel},
		{in: " warn ", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "trace", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_WritesJSONWithSession(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Named("api").Info("fetched", "page", 2)
	l.Logr().V(1).Info("hidden at info level")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry[MessageKey] != "fetched" {
		t.Errorf("message = %v", entry[MessageKey])
	}
	if entry[SessionKey] != l.SessionID() {
		t.Errorf("session = %v, want %s", entry[SessionKey], l.SessionID())
	}
	if entry[ComponentKey] != "api" {
		t.Errorf("component = %v", entry[ComponentKey])
	}
	if entry["page"] != float64(2) {
		t.Errorf("page = %v", entry["page"])
	}
}

func TestNew_DebugEnablesVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Logr().V(1).Info("visible")
	_ = l.Sync()

	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected V(1) entry at debug level, got %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	l, err := NewFile(path, "debug")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	l.Logr().Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Logr().Info("ignored")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&buf, "info")

	ctx := WithLogger(context.Background(), l.Logr())
	FromContext(ctx).Info("from context")
	FromContext(context.Background()).Info("discarded")
	_ = l.Sync()

	if !strings.Contains(buf.String(), "from context") || strings.Contains(buf.String(), "discarded") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
