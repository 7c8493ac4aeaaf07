package meshcomp

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/mesh"
)

// Logger wraps slog.Logger with meshcomp-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElement adds an element kind field to the logger.
func (l *Logger) WithElement(k core.ElementKind) *Logger {
	return &Logger{
		Logger: l.Logger.With("element", k.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCompact logs a mesh compaction with the resulting container sizes.
func (l *Logger) LogCompact(ctx context.Context, m *mesh.Mesh, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compact failed",
			"error", err,
		)
		return
	}
	for _, c := range m.Containers() {
		l.WithElement(c.ElementKind()).WithCount(c.Size()).DebugContext(ctx, "compact completed")
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"filename", filename,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot completed",
		"op", op,
		"filename", filename,
	)
}

// LogProfile logs the application of a mesh profile.
func (l *Logger) LogProfile(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "profile failed",
			"profile", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "profile applied",
		"profile", name,
	)
}
