// Package util holds small value-shaping helpers: template substitution,
// map merging, and shallow cloning.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// Translate substitutes params into a message template.
//
//   - nil params returns the template verbatim.
//   - a slice or a single scalar applies printf-style positional formatting.
//   - a map replaces every occurrence of every key in a single pass, so
//     replacement text is never itself re-scanned. Longer keys win over their
//     prefixes.
func Translate(template string, params any) string {
	switch p := params.(type) {
	case nil:
		return template
	case []any:
		return fmt.Sprintf(template, p...)
	case map[string]string:
		pairs := make(map[string]string, len(p))
		for k, v := range p {
			pairs[k] = v
		}
		return replaceAll(template, pairs)
	case map[string]any:
		pairs := make(map[string]string, len(p))
		for k, v := range p {
			pairs[k] = fmt.Sprint(v)
		}
		return replaceAll(template, pairs)
	default:
		return fmt.Sprintf(template, p)
	}
}

// replaceAll performs the single-pass multi-key substitution. Keys are fed to
// the replacer longest-first so overlapping tokens behave predictably.
func replaceAll(template string, pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, pairs[k])
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}
