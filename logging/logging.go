// SPDX-License-Identifier: MIT

// Package logging builds slog loggers and carries them through a
// context.Context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Accepted level and format names.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name to a slog.Level. The second result is false
// for unknown names, in which case LevelInfo is returned.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case LevelDebug:
		return slog.LevelDebug, true
	case LevelInfo:
		return slog.LevelInfo, true
	case LevelWarn:
		return slog.LevelWarn, true
	case LevelError:
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ValidLevel reports whether s names a level.
func ValidLevel(s string) bool {
	_, ok := ParseLevel(s)

	return ok
}

// ValidFormat reports whether s names an output format.
func ValidFormat(s string) bool {
	switch strings.ToLower(s) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// New creates a logger writing to w. Unknown levels fall back to info and
// any format other than "json" produces text output. The global default
// logger is left untouched.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// key is an unexported type to prevent collisions with other context keys.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Lookup extracts the logger stored by WithLogger, if any.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)

	return logger, ok && logger != nil
}

// FromContext extracts the logger from ctx, falling back to slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}

	return slog.Default()
}
