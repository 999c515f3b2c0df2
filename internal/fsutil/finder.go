// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"strings"
)

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FindEntry searches dir (non-recursively) for a file whose name matches the
// wanted name ignoring case. It returns the actual on-disk name so callers can
// detect case mismatches. A missing or unreadable directory is treated as
// no match.
func FindEntry(dir string, want string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	folded := ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == want {
			return want, true
		}
		if folded == "" && strings.EqualFold(e.Name(), want) {
			folded = e.Name()
		}
	}
	if folded != "" {
		return folded, true
	}
	return "", false
}
