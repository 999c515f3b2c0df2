package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "User.hcl")

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.hcl")))
	assert.False(t, FileExists(dir), "directories are not regular files")
}

func TestFindEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user.hcl")

	t.Run("case-insensitive match", func(t *testing.T) {
		name, ok := FindEntry(dir, "User.hcl")
		require.True(t, ok)
		assert.Equal(t, "user.hcl", name)
	})

	t.Run("exact match preferred", func(t *testing.T) {
		writeFile(t, dir, "User.hcl")
		name, ok := FindEntry(dir, "User.hcl")
		require.True(t, ok)
		assert.Equal(t, "User.hcl", name)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := FindEntry(dir, "Ghost.hcl")
		assert.False(t, ok)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, ok := FindEntry(filepath.Join(dir, "nope"), "User.hcl")
		assert.False(t, ok)
	})
}
