package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/corekit/internal/alias"
	"github.com/vk/corekit/internal/ctxlog"
	"github.com/vk/corekit/internal/fsutil"
)

// Import makes an alias usable. The result depends on the alias shape:
//
//   - no separator: the alias already denotes a simple type name and is
//     returned unchanged; if a live binding exists under that name the alias
//     is marked imported.
//   - trailing wildcard: the resolved directory joins the include path list
//     (once per path) and is returned.
//   - concrete type name: with forceLoad the backing definition file is
//     loaded and bound immediately; otherwise only the type's location is
//     recorded for later lazy resolution. The type name is returned.
//
// Import is idempotent: re-importing an alias is a memo lookup. An alias that
// cannot be resolved, or a forced import with no backing file, fails with
// ErrInvalidAlias.
func (r *Registry) Import(ctx context.Context, name string, forceLoad bool) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result, ok := r.imported[name]; ok {
		return result, nil
	}

	if !strings.Contains(name, ".") {
		if r.isBound(name) {
			r.imported[name] = name
		}
		return name, nil
	}

	last := name[strings.LastIndex(name, ".")+1:]
	path, ok := r.aliases.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %q cannot be resolved to a path", ErrInvalidAlias, name)
	}

	if last == alias.Wildcard {
		if _, seen := r.includeSeen[path]; !seen {
			r.includeSeen[path] = struct{}{}
			r.includePaths = append(r.includePaths, path)
			ctxlog.Trace(ctx, fmt.Sprintf("include path added: %s", path), "registry")
		}
		r.imported[name] = path
		return path, nil
	}

	if forceLoad {
		file := path + FileExtension
		if !fsutil.FileExists(file) {
			return "", fmt.Errorf("%w: %q has no definition file at %s", ErrInvalidAlias, name, file)
		}
		def, err := r.load(ctx, last, file)
		if err != nil {
			return "", err
		}
		r.resolved[last] = def
		r.imported[name] = last
		return last, nil
	}

	r.classMap[last] = path
	r.imported[name] = last
	return last, nil
}

// isBound reports whether a type name already has a live binding, either a
// compiled factory or a previously resolved definition. Callers must hold
// r.mu.
func (r *Registry) isBound(name string) bool {
	if _, ok := r.resolved[name]; ok {
		return true
	}
	_, ok := r.factories[name]
	return ok
}
