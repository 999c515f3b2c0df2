package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/config"
	"github.com/vk/corekit/internal/ctxlog"
)

// manifestFile decodes the top level of an application manifest.
type manifestFile struct {
	Runtime     *runtimeBlock     `hcl:"runtime,block"`
	Aliases     []*aliasBlock     `hcl:"alias,block"`
	Imports     []*importBlock    `hcl:"import,block"`
	Application *applicationBlock `hcl:"application,block"`
}

type runtimeBlock struct {
	Debug     bool   `hcl:"debug,optional"`
	Root      string `hcl:"root,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

type aliasBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type importBlock struct {
	Alias string `hcl:"alias,label"`
	Force bool   `hcl:"force,optional"`
}

// applicationBlock is the descriptor of the application component. Every
// attribute other than type becomes a descriptor property.
type applicationBlock struct {
	Type string   `hcl:"type"`
	Body hcl.Body `hcl:",remain"`
}

// LoadManifest parses an application manifest file.
func (l *Loader) LoadManifest(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading application manifest.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var root manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	manifest := &config.Manifest{}
	if root.Runtime != nil {
		manifest.Runtime = config.Runtime{
			Debug:     root.Runtime.Debug,
			Root:      root.Runtime.Root,
			LogLevel:  root.Runtime.LogLevel,
			LogFormat: root.Runtime.LogFormat,
		}
	}
	for _, a := range root.Aliases {
		manifest.Aliases = append(manifest.Aliases, config.Alias{Name: a.Name, Path: a.Path})
	}
	for _, imp := range root.Imports {
		manifest.Imports = append(manifest.Imports, config.Import{Alias: imp.Alias, Force: imp.Force})
	}
	if root.Application != nil {
		attrs, diags := root.Application.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid application block in %s: %w", path, diags)
		}
		props, err := attributesToProperties(attrs)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		manifest.Application = &component.Descriptor{
			Type:       root.Application.Type,
			Properties: props,
		}
	}

	logger.Debug("Manifest loaded.",
		"aliases", len(manifest.Aliases),
		"imports", len(manifest.Imports),
		"has_application", manifest.Application != nil,
	)
	return manifest, nil
}
