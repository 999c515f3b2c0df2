// Package logger provides the bundled ConsoleLogger component. It satisfies
// the collaborator logging contract: a Log(message, level, category) method
// plus well-known level constants.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/registry"
)

// Well-known level names accepted by Log.
const (
	LevelTrace   = "trace"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// ConsoleLogger writes leveled, categorized messages through slog.
type ConsoleLogger struct {
	// Level is the minimum level emitted.
	Level string `prop:"level"`
	// Format selects the handler: "json" or "text".
	Format string `prop:"format"`

	mu   sync.Mutex
	out  io.Writer
	base *slog.Logger
}

// New is the compiled factory for ConsoleLogger. An optional first argument
// overrides the output writer.
func New(args ...any) any {
	l := &ConsoleLogger{Level: LevelInfo}
	if len(args) > 0 {
		if w, ok := args[0].(io.Writer); ok {
			l.out = w
		}
	}
	return l
}

// Log writes one message. The underlying slog.Logger is built on first use so
// property overlay can finish before the handler is configured.
func (l *ConsoleLogger) Log(message string, level string, category string) {
	l.mu.Lock()
	if l.base == nil {
		l.base = l.build()
	}
	base := l.base
	l.mu.Unlock()

	if category == "" {
		category = "application"
	}
	base.Log(context.Background(), slogLevel(level), message, "category", category)
}

// Dispose flushes nothing (slog writes synchronously) but drops the handler
// so a disposed logger rebuilds cleanly if reused.
func (l *ConsoleLogger) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base = nil
}

func (l *ConsoleLogger) build() *slog.Logger {
	out := l.out
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(l.Level)}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

func slogLevel(name string) slog.Level {
	switch name {
	case LevelTrace:
		return slog.LevelDebug
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the compiled factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("ConsoleLogger", component.Factory(New))
}
