// Package config holds the format-agnostic manifest model and the loader
// interface implemented by format-specific adapters.
package config

import (
	"context"

	"github.com/vk/corekit/internal/component"
)

// Loader is the interface for a format-specific definition and manifest
// loader.
type Loader interface {
	// LoadDefinition reads a single component definition file and translates
	// it into an (unbound) definition.
	LoadDefinition(ctx context.Context, path string) (*component.Definition, error)

	// LoadManifest reads an application manifest file.
	LoadManifest(ctx context.Context, path string) (*Manifest, error)
}

// Manifest is the unified representation of an application manifest: runtime
// settings, root aliases, imports to perform at startup, and the descriptor
// of the application component to adopt.
type Manifest struct {
	Runtime     Runtime
	Aliases     []Alias
	Imports     []Import
	Application *component.Descriptor
}

// Runtime holds process-level settings from the manifest's runtime block.
type Runtime struct {
	Debug     bool
	Root      string
	LogLevel  string
	LogFormat string
}

// Alias is a root alias registration.
type Alias struct {
	Name string
	Path string
}

// Import is an alias import performed at startup.
type Import struct {
	Alias string
	Force bool
}
