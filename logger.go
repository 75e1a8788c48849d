package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// WithName adds the snapshot name to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogSave logs a snapshot save. The snapshot name comes from WithName.
func (l *Logger) LogSave(ctx context.Context, bitCount, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "snapshot save failed",
			"bits", bitCount,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot saved",
		"bits", bitCount,
		"bytes", size,
	)
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "snapshot load failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot loaded",
		"bytes", size,
	)
}

// LogDelete logs a snapshot delete.
func (l *Logger) LogDelete(ctx context.Context, err error) {
	if err != nil {
		l.WarnContext(ctx, "snapshot delete failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot deleted")
}

// LogLoadAll logs a batch load.
func (l *Logger) LogLoadAll(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch load failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch load completed",
		"count", count,
	)
}
