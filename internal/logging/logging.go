// Package logging builds the zap loggers used by the CLI and the TUI and
// exposes them as logr.Logger.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	SessionKey   = "session"
	ComponentKey = "component"
)

type contextKey struct{}

// Logger pairs a zap logger with its logr view.
type Logger struct {
	zap       *zap.Logger
	log       logr.Logger
	sessionID string
	closer    io.Closer
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogger(zapcore.AddSync(w), lvl, nil), nil
}

// NewFile creates a JSON logger appending to path. Close releases the file.
func NewFile(path, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(zapcore.AddSync(f), lvl, f), nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{
		zap: zap.NewNop(),
		log: logr.Discard(),
	}
}

func newLogger(ws zapcore.WriteSyncer, lvl zapcore.Level, closer io.Closer) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	sessionID := uuid.NewString()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(ws),
		zap.NewAtomicLevelAt(lvl),
	).With([]zapcore.Field{zap.String(SessionKey, sessionID)})

	z := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return &Logger{
		zap:       z,
		log:       zapr.NewLogger(z),
		sessionID: sessionID,
		closer:    closer,
	}
}

// Logr returns the logr view of the logger.
func (l *Logger) Logr() logr.Logger {
	return l.log
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Named returns a logr.Logger tagged with a component name.
func (l *Logger) Named(component string) logr.Logger {
	return l.log.WithValues(ComponentKey, component)
}

// SessionID identifies this process in the log.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() error {
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

// Close flushes the logger and closes its file, if any.
func (l *Logger) Close() error {
	err := l.Sync()
	if l.closer != nil {
		if cerr := l.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
		l.closer = nil
	}
	return err
}

func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "inappropriate ioctl") || strings.Contains(msg, "invalid argument")
}

// WithLogger stores log in ctx.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in ctx, or a discarding one.
func FromContext(ctx context.Context) logr.Logger {
	if log, ok := ctx.Value(contextKey{}).(logr.Logger); ok {
		return log
	}
	return logr.Discard()
}
