// Package registry implements the lazy resolution registry: the import
// machinery that records where component definitions live, and the memoizing
// resolver that binds a type name to a loaded definition on first reference.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vk/corekit/internal/alias"
	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/config"
	"github.com/vk/corekit/internal/ctxlog"
)

// FileExtension is the fixed extension of component definition files.
const FileExtension = ".hcl"

var (
	// ErrInvalidAlias is returned when an alias cannot be resolved to a path,
	// or a forced import finds no backing file.
	ErrInvalidAlias = errors.New("registry: invalid alias")
	// ErrClassFileMismatch is returned when the strict-mode directory scan
	// finds a definition file whose name differs in case from the requested
	// type name.
	ErrClassFileMismatch = errors.New("registry: definition file name mismatch")
)

// Module is the interface bundled component packages implement to register
// their compiled factories.
type Module interface {
	Register(r *Registry)
}

// Registry owns the process-wide component tables: compiled factories, the
// class map populated by lazy imports, the ordered include path list, the
// import memo, and the permanently bound definitions.
type Registry struct {
	mu      sync.Mutex
	strict  bool
	loader  config.Loader
	aliases *alias.Resolver

	factories    map[string]component.Factory
	classMap     map[string]string
	includePaths []string
	includeSeen  map[string]struct{}
	imported     map[string]string
	resolved     map[string]*component.Definition
	loading      map[string]struct{}
}

// New creates a Registry resolving paths through aliases and loading
// definition files through loader.
func New(aliases *alias.Resolver, loader config.Loader) *Registry {
	return &Registry{
		loader:      loader,
		aliases:     aliases,
		factories:   make(map[string]component.Factory),
		classMap:    make(map[string]string),
		includeSeen: make(map[string]struct{}),
		imported:    make(map[string]string),
		resolved:    make(map[string]*component.Definition),
		loading:     make(map[string]struct{}),
	}
}

// SetStrict forces strict file-name checking regardless of the process-wide
// debug flag. Primarily for tests.
func (r *Registry) SetStrict(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strict = on
}

// strictMode reports whether the directory scan must verify file names
// case-sensitively.
func (r *Registry) strictMode() bool {
	return r.strict || ctxlog.Debug()
}

// RegisterFactory registers a compiled component factory under a name. The
// name doubles as a built-in type name and as an `impl` key for definition
// files. Duplicate registration is a programming error.
func (r *Registry) RegisterFactory(name string, factory component.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("registry: factory %q already registered", name))
	}
	r.factories[name] = factory
}

// IncludePaths returns a snapshot of the include path list, in registration
// order.
func (r *Registry) IncludePaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.includePaths))
	copy(out, r.includePaths)
	return out
}
