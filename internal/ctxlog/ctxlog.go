// Package ctxlog provides context keys for safely passing slog.Logger
// instances through context.Context.
//
// Two channels are carried: the main application logger and the cockpit
// logger, a status channel meant for machine consumption by a management UI.
// Both fall back to a logger that discards everything, so library code can log
// unconditionally.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key int

const (
	loggerKey key = iota
	cockpitKey
)

var discard = slog.New(slog.DiscardHandler)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return discard
}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns a logger that discards output.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

// WithCockpit returns a new context carrying the cockpit status logger.
func WithCockpit(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, cockpitKey, logger)
}

// CockpitFromContext extracts the cockpit status logger, or a discarding
// logger when none was configured.
func CockpitFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(cockpitKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
