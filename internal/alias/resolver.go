// Package alias maps symbolic dotted names to filesystem paths.
//
// A root alias is registered directly with a path. A compound alias such as
// "app.models.User" resolves by joining the root's path with the remaining
// dot segments. Compound resolutions are memoized under the full original
// name; the memo is write-once per key and survives later changes to the
// root entry it was derived from (reassigning a root does not retroactively
// invalidate compound entries).
package alias

import (
	"path/filepath"
	"strings"
	"sync"
)

// Wildcard is the segment denoting "the whole directory" in an alias.
const Wildcard = "*"

// Resolver owns the root alias table and the compound resolution cache.
type Resolver struct {
	mu    sync.RWMutex
	roots map[string]string
	cache map[string]string
}

// NewResolver returns an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{
		roots: make(map[string]string),
		cache: make(map[string]string),
	}
}

// SetAlias registers or replaces a root alias. The path is stored verbatim;
// no normalization or existence check is performed.
func (r *Resolver) SetAlias(name string, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roots[name] = path
}

// RemoveAlias removes a root alias and the cache entry stored under the same
// exact key. Compound cache entries derived from the root are left in place.
func (r *Resolver) RemoveAlias(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roots, name)
	delete(r.cache, name)
}

// Resolve turns an alias into a filesystem path. It returns false when the
// name is neither a known root, a cached compound, nor derivable from a known
// root. A trailing wildcard segment resolves to the containing directory.
func (r *Resolver) Resolve(name string) (string, bool) {
	r.mu.RLock()
	if path, ok := r.roots[name]; ok {
		r.mu.RUnlock()
		return path, true
	}
	if path, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return path, true
	}
	r.mu.RUnlock()

	root, rest, ok := strings.Cut(name, ".")
	if !ok {
		return "", false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, ok := r.roots[root]
	if !ok {
		return "", false
	}
	// Re-check the cache under the write lock; another caller may have
	// resolved the same compound in the meantime.
	if path, ok := r.cache[name]; ok {
		return path, true
	}

	path := base
	segments := strings.Split(rest, ".")
	for i, seg := range segments {
		if seg == Wildcard && i == len(segments)-1 {
			break
		}
		path = filepath.Join(path, seg)
	}
	r.cache[name] = path
	return path, true
}
