// Package kernel is the composition root of the runtime: it wires the alias
// resolver, registry, and component factory together and owns the
// process-wide application slot.
package kernel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/vk/corekit/internal/alias"
	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/config"
	"github.com/vk/corekit/internal/ctxlog"
	"github.com/vk/corekit/internal/registry"
)

// RootAlias is the fixed root alias seeded at startup.
const RootAlias = "app"

// ErrMultipleApplication signals a second live application being registered
// without clearing the first. This is a programming-contract violation, so
// SetApplication panics with it rather than returning it.
var ErrMultipleApplication = errors.New("kernel: application can only be created once")

// Application is the disposal hook invoked when the current application is
// cleared.
type Application interface {
	Dispose()
}

// Runnable is implemented by application components that drive the process.
type Runnable interface {
	Run(ctx context.Context) error
}

// Config holds the settings a Kernel needs to start.
type Config struct {
	// Root seeds the fixed "app" root alias. Empty leaves it unset.
	Root string
	// Debug enables trace logging and strict file-name checking.
	Debug     bool
	LogLevel  string
	LogFormat string
}

// Kernel owns the process-wide tables and the application slot.
type Kernel struct {
	mu      sync.Mutex
	logger  *slog.Logger
	aliases *alias.Resolver
	reg     *registry.Registry
	factory *component.ComponentFactory
	app     any
}

// New builds a Kernel: logger, alias table seeded with the fixed root alias,
// registry populated with the compiled factories of the given modules (the
// bundled set when none are passed), and the component factory on top.
func New(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *Kernel {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctxlog.SetDebug(cfg.Debug)

	aliases := alias.NewResolver()
	if cfg.Root != "" {
		aliases.SetAlias(RootAlias, cfg.Root)
	}

	reg := registry.New(aliases, loader)
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Compiled component factories registered.", "modules", len(modules))

	return &Kernel{
		logger:  logger,
		aliases: aliases,
		reg:     reg,
		factory: component.NewFactory(reg),
	}
}

// Context returns ctx with the kernel's logger embedded.
func (k *Kernel) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, k.logger)
}

// Aliases returns the kernel's alias resolver.
func (k *Kernel) Aliases() *alias.Resolver { return k.aliases }

// Registry returns the kernel's lazy resolution registry.
func (k *Kernel) Registry() *registry.Registry { return k.reg }

// Factory returns the kernel's component factory.
func (k *Kernel) Factory() *component.ComponentFactory { return k.factory }

// Create resolves typ to an implementation and builds an instance, without
// touching the application slot. typ is either a type name (resolved through
// the registry) or a component.Factory used directly. An unresolvable name or
// a non-constructible typ reports an absent result, not an error.
func (k *Kernel) Create(ctx context.Context, typ any, ctorArgs ...any) (any, bool, error) {
	switch t := typ.(type) {
	case string:
		def, ok, err := k.reg.Resolve(ctx, t)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		return def.New(ctorArgs...), true, nil
	case component.Factory:
		return t(ctorArgs...), true, nil
	case func(...any) any:
		return t(ctorArgs...), true, nil
	default:
		return nil, false, nil
	}
}

// SetApplication adopts instance as the process-wide application. At most one
// live application is allowed: setting a second one without clearing first
// panics with ErrMultipleApplication. Passing nil clears the slot, invoking
// the current instance's disposal hook if it has one; clearing an empty slot
// is a no-op.
func (k *Kernel) SetApplication(instance any) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if instance == nil {
		if k.app == nil {
			return
		}
		if d, ok := k.app.(Application); ok {
			d.Dispose()
		}
		k.app = nil
		return
	}

	if k.app != nil {
		panic(ErrMultipleApplication)
	}
	k.app = instance
}

// Application returns the current application instance, or nil when none is
// registered.
func (k *Kernel) Application() any {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.app
}
