package util

// Merge copies entries from each source left-to-right into a fresh map,
// later sources overwriting earlier ones. Nil sources are skipped; the
// result never aliases a source.
func Merge(sources ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, src := range sources {
		for k, v := range src {
			out[k] = v
		}
	}
	return out
}
