package registry

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/ctxlog"
	"github.com/vk/corekit/internal/fsutil"
)

// Resolve binds a type name to its definition on first reference, trying in
// order: a compiled factory registered under the name, the class map entry
// recorded by a prior lazy import, then each include path in registration
// order looking for "<name>.hcl". A successful binding is memoized
// permanently. When no source matches, Resolve reports a graceful miss
// (nil, false, nil) so optional types can be probed safely.
//
// In strict mode the directory scan additionally requires the matched file's
// base name to equal the requested type name case-sensitively; a mismatch
// fails with ErrClassFileMismatch.
func (r *Registry) Resolve(ctx context.Context, name string) (*component.Definition, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(ctx, name)
}

// resolve is the locked body of Resolve, shared with definition loading for
// parent lookups. Callers must hold r.mu.
func (r *Registry) resolve(ctx context.Context, name string) (*component.Definition, bool, error) {
	if def, ok := r.resolved[name]; ok {
		return def, true, nil
	}

	if factory, ok := r.factories[name]; ok {
		def := &component.Definition{Name: name, New: factory}
		r.resolved[name] = def
		ctxlog.Trace(ctx, fmt.Sprintf("type %q bound to compiled factory", name), "registry")
		return def, true, nil
	}

	if base, ok := r.classMap[name]; ok {
		def, err := r.load(ctx, name, base+FileExtension)
		if err != nil {
			return nil, false, err
		}
		r.resolved[name] = def
		return def, true, nil
	}

	want := name + FileExtension
	for _, dir := range r.includePaths {
		actual, found := fsutil.FindEntry(dir, want)
		if !found {
			continue
		}
		if r.strictMode() && actual != want {
			return nil, false, fmt.Errorf("%w: requested %q, found %q in %s",
				ErrClassFileMismatch, want, actual, dir)
		}
		def, err := r.load(ctx, name, filepath.Join(dir, actual))
		if err != nil {
			return nil, false, err
		}
		r.resolved[name] = def
		return def, true, nil
	}

	return nil, false, nil
}

// load parses one definition file and binds it: the declared impl key must
// name a compiled factory, and an extends chain pulls the parent's defaults
// in front of the child's. Callers must hold r.mu.
func (r *Registry) load(ctx context.Context, name string, file string) (*component.Definition, error) {
	if _, busy := r.loading[name]; busy {
		return nil, fmt.Errorf("registry: inheritance cycle through %q", name)
	}
	r.loading[name] = struct{}{}
	defer delete(r.loading, name)

	def, err := r.loader.LoadDefinition(ctx, file)
	if err != nil {
		return nil, err
	}
	if def.Name != name {
		return nil, fmt.Errorf("registry: %s declares component %q, want %q", file, def.Name, name)
	}

	impl := def.Impl
	if impl == "" {
		impl = def.Name
	}
	factory, ok := r.factories[impl]
	if !ok {
		return nil, fmt.Errorf("registry: component %q references unknown implementation %q", def.Name, impl)
	}
	def.New = factory

	if def.Extends != "" {
		parent, ok, err := r.resolve(ctx, def.Extends)
		if err != nil {
			return nil, fmt.Errorf("registry: component %q: %w", def.Name, err)
		}
		if !ok {
			return nil, fmt.Errorf("registry: component %q extends unknown component %q", def.Name, def.Extends)
		}
		merged := make([]component.Property, 0, len(parent.Defaults)+len(def.Defaults))
		merged = append(merged, parent.Defaults...)
		merged = append(merged, def.Defaults...)
		def.Defaults = merged
	}

	ctxlog.Trace(ctx, fmt.Sprintf("type %q loaded from %s", name, file), "registry")
	return def, nil
}
