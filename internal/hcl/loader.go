// Package hcl is the HCL implementation of the config.Loader interface. It
// parses component definition files and application manifests.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/ctxlog"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// definitionFile decodes the top level of a component definition file.
type definitionFile struct {
	Components []*componentBlock `hcl:"component,block"`
}

// componentBlock is a `component "Name" { ... }` block.
type componentBlock struct {
	Name     string         `hcl:"name,label"`
	Impl     string         `hcl:"impl,optional"`
	Extends  string         `hcl:"extends,optional"`
	Defaults *defaultsBlock `hcl:"defaults,block"`
}

// defaultsBlock carries arbitrary default attributes.
type defaultsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// LoadDefinition parses a single component definition file. The file must
// contain exactly one component block; its defaults keep their source order.
func (l *Loader) LoadDefinition(ctx context.Context, path string) (*component.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading component definition.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definition file %s: %w", path, diags)
	}

	var root definitionFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode definition file %s: %w", path, diags)
	}
	if len(root.Components) != 1 {
		return nil, fmt.Errorf("definition file %s must contain exactly one component block, has %d", path, len(root.Components))
	}

	block := root.Components[0]
	defaults, err := bodyProperties(block.Defaults)
	if err != nil {
		return nil, fmt.Errorf("definition file %s: %w", path, err)
	}

	def := &component.Definition{
		Name:     block.Name,
		Impl:     block.Impl,
		Extends:  block.Extends,
		Defaults: defaults,
	}
	logger.Debug("Component definition loaded.", "name", def.Name, "defaults", len(def.Defaults))
	return def, nil
}

// bodyProperties flattens a defaults block into ordered properties. A nil
// block yields no properties.
func bodyProperties(block *defaultsBlock) ([]component.Property, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid defaults block: %w", diags)
	}
	return attributesToProperties(attrs)
}
