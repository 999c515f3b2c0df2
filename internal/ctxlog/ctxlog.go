// Package ctxlog carries a slog.Logger through context.Context and hosts the
// process-wide debug flag plus the leveled logging helpers used across the
// runtime.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is found,
// it returns the process fallback logger, constructing it on first use.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return fallback()
}

var (
	fallbackOnce   sync.Once
	fallbackLogger *slog.Logger
)

// fallback lazily builds the process-wide logger. It is independent of any
// application instance so logging works before (and after) one exists.
func fallback() *slog.Logger {
	fallbackOnce.Do(func() {
		level := slog.LevelInfo
		if Debug() {
			level = slog.LevelDebug
		}
		fallbackLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	})
	return fallbackLogger
}

// debugFlag is the process-wide debug switch. It gates Trace output and the
// strict file-name check in the registry's directory scan.
var debugFlag atomic.Bool

// SetDebug sets the process-wide debug flag.
func SetDebug(on bool) {
	debugFlag.Store(on)
}

// Debug reports whether the process-wide debug flag is set.
func Debug() bool {
	return debugFlag.Load()
}

// Log writes a message at the given level under a category attribute.
// The category defaults to "application" when empty.
func Log(ctx context.Context, msg string, level slog.Level, category string) {
	if category == "" {
		category = "application"
	}
	FromContext(ctx).Log(ctx, level, msg, "category", category)
}

// Trace writes a debug-level message under a category attribute. It is a
// no-op unless the process-wide debug flag is set.
func Trace(ctx context.Context, msg string, category string) {
	if !Debug() {
		return
	}
	Log(ctx, msg, slog.LevelDebug, category)
}
