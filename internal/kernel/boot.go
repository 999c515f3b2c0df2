package kernel

import (
	"context"
	"fmt"

	"github.com/vk/corekit/internal/config"
)

// Boot applies a manifest to the kernel: root aliases are registered,
// imports are performed in order, and the application descriptor (when
// present) is constructed and adopted as the process-wide application.
func (k *Kernel) Boot(ctx context.Context, manifest *config.Manifest) error {
	ctx = k.Context(ctx)

	for _, a := range manifest.Aliases {
		k.aliases.SetAlias(a.Name, a.Path)
	}
	for _, imp := range manifest.Imports {
		if _, err := k.reg.Import(ctx, imp.Alias, imp.Force); err != nil {
			return fmt.Errorf("import %q: %w", imp.Alias, err)
		}
	}

	if manifest.Application != nil {
		instance, err := k.factory.Construct(ctx, manifest.Application)
		if err != nil {
			return fmt.Errorf("application: %w", err)
		}
		k.SetApplication(instance)
		k.logger.Info("Application adopted.", "type", manifest.Application.Type)
	}
	return nil
}

// Run drives the current application when it implements Runnable; otherwise
// it returns immediately.
func (k *Kernel) Run(ctx context.Context) error {
	app := k.Application()
	if runnable, ok := app.(Runnable); ok {
		return runnable.Run(k.Context(ctx))
	}
	return nil
}
