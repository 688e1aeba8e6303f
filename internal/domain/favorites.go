package domain

import "strings"

// RemoveIndices returns favorites without the entries at the given indices.
// Indices may come in any order; duplicates and out-of-range values are ignored.
func RemoveIndices(favorites []string, indices []int) []string {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		drop[i] = struct{}{}
	}

	kept := make([]string, 0, len(favorites))
	for i, f := range favorites {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// ParseFavorites splits file content into trimmed, non-empty lines
func ParseFavorites(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// FormatFavorites joins favorites one per line, without a trailing newline
func FormatFavorites(favorites []string) string {
	return strings.Join(favorites, "\n")
}
