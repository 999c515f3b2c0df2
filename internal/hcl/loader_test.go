package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/corekit/internal/component"
)

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "FileCache.hcl", `
component "FileCache" {
  impl    = "cache.file"
  extends = "Cache"
  defaults {
    ttl  = 300
    path = "/tmp/cache"
    tags = ["a", "b"]
  }
}
`)

	def, err := NewLoader().LoadDefinition(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "FileCache", def.Name)
	assert.Equal(t, "cache.file", def.Impl)
	assert.Equal(t, "Cache", def.Extends)
	require.Len(t, def.Defaults, 3)

	// Defaults keep their source order.
	assert.Equal(t, "ttl", def.Defaults[0].Name)
	assert.Equal(t, float64(300), def.Defaults[0].Value)
	assert.Equal(t, "path", def.Defaults[1].Name)
	assert.Equal(t, "/tmp/cache", def.Defaults[1].Value)
	assert.Equal(t, "tags", def.Defaults[2].Name)
	assert.Equal(t, []any{"a", "b"}, def.Defaults[2].Value)
}

func TestLoadDefinitionMinimal(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "Tracker.hcl", `
component "Tracker" {}
`)

	def, err := NewLoader().LoadDefinition(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Tracker", def.Name)
	assert.Empty(t, def.Impl)
	assert.Empty(t, def.Defaults)
}

func TestLoadDefinitionErrors(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader()

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadDefinition(context.Background(), filepath.Join(dir, "nope.hcl"))
		assert.Error(t, err)
	})

	t.Run("no component block", func(t *testing.T) {
		path := writeFixture(t, dir, "empty.hcl", ``)
		_, err := loader.LoadDefinition(context.Background(), path)
		assert.ErrorContains(t, err, "exactly one component block")
	})

	t.Run("two component blocks", func(t *testing.T) {
		path := writeFixture(t, dir, "two.hcl", `
component "A" {}
component "B" {}
`)
		_, err := loader.LoadDefinition(context.Background(), path)
		assert.ErrorContains(t, err, "exactly one component block")
	})
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "app.hcl", `
runtime {
  debug = true
  root  = "/srv/app"
}

alias "lib" { path = "/srv/lib" }

import "app.components.*" {}
import "app.components.Tracker" { force = true }

application {
  type  = "ConsoleLogger"
  level = "info"
}
`)

	manifest, err := NewLoader().LoadManifest(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, manifest.Runtime.Debug)
	assert.Equal(t, "/srv/app", manifest.Runtime.Root)

	require.Len(t, manifest.Aliases, 1)
	assert.Equal(t, "lib", manifest.Aliases[0].Name)
	assert.Equal(t, "/srv/lib", manifest.Aliases[0].Path)

	require.Len(t, manifest.Imports, 2)
	assert.Equal(t, "app.components.*", manifest.Imports[0].Alias)
	assert.False(t, manifest.Imports[0].Force)
	assert.Equal(t, "app.components.Tracker", manifest.Imports[1].Alias)
	assert.True(t, manifest.Imports[1].Force)

	require.NotNil(t, manifest.Application)
	assert.Equal(t, "ConsoleLogger", manifest.Application.Type)
	assert.Equal(t, []component.Property{{Name: "level", Value: "info"}}, manifest.Application.Properties)
}

func TestLoadManifestEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "bare.hcl", ``)

	manifest, err := NewLoader().LoadManifest(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, manifest.Runtime.Debug)
	assert.Nil(t, manifest.Application)
}
