// Package logging builds the service's slog logger and carries it through
// context.Context.
//
// Logger construction:
//
//	logger := logging.New("info", logging.FormatJSON, os.Stderr)
//
// The HTTP logging middleware stores a request-scoped child logger with
// WithLogger; the undo history and application services pick it up with
// FromContext so every line of a request shares its request_id:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "undo failed",
//	    slog.String("operation", "History.Undo"),
//	    slog.String("description", txn.Description()),
//	    slog.Any("error", err),
//	)
//
// Error lines carry the operation name, the key or transaction they concern,
// and the full error chain via slog.Any("error", err).
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates a configured *slog.Logger.
//
// Level is one of "debug", "info", "warn" or "error"; anything else falls
// back to info. FormatText selects slog.NewTextHandler, any other format
// produces JSON. Debug loggers include the source location. redactFields
// names extra attributes to mask alongside the built-in credential fields.
func New(level, format string, w io.Writer, redactFields ...string) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(redactFields...),
	}

	var handler slog.Handler
	if format == FormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a case-insensitive level name to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
