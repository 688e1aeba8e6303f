package views

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// filterItems returns the indices of items matching query, best match
// first, with the matched rune offsets of each hit. An empty query keeps
// every item, newest (last) first.
func filterItems(query string, items []string) ([]int, map[int][]int) {
	query = strings.TrimSpace(query)
	if query == "" {
		order := make([]int, 0, len(items))
		for i := len(items) - 1; i >= 0; i-- {
			order = append(order, i)
		}
		return order, nil
	}

	matches := fuzzy.Find(query, items)
	order := make([]int, 0, len(matches))
	hits := make(map[int][]int, len(matches))
	for _, m := range matches {
		order = append(order, m.Index)
		hits[m.Index] = m.MatchedIndexes
	}
	return order, hits
}

// shiftHits maps rune offsets of the full entry onto its KeepRight
// rendering, where the first dropped runes are replaced by one ellipsis
func shiftHits(hits []int, fullLen, width int) []int {
	if width <= 0 || fullLen <= width {
		return hits
	}
	dropped := fullLen - width + 1
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		if h >= dropped {
			out = append(out, h-dropped+1)
		}
	}
	return out
}
