package commands

import (
	"context"
	"sort"
)

// scriptedPicker returns one canned selection per call and records the items shown
type scriptedPicker struct {
	picks [][]int
	shown [][]string
}

func (p *scriptedPicker) Select(_ context.Context, items []string) ([]int, error) {
	p.shown = append(p.shown, items)
	if len(p.picks) == 0 {
		return nil, nil
	}
	pick := p.picks[0]
	p.picks = p.picks[1:]
	return pick, nil
}

type fakeSession struct {
	listings  map[string][]string
	fetches   map[string]int
	downloads []string
	err       error
}

func (s *fakeSession) FetchListing(_ context.Context, dirURL string) ([]string, error) {
	if s.fetches == nil {
		s.fetches = map[string]int{}
	}
	s.fetches[dirURL]++
	if s.err != nil {
		return nil, s.err
	}
	return s.listings[dirURL], nil
}

func (s *fakeSession) Download(_ context.Context, fileURL, destDir string) (string, error) {
	s.downloads = append(s.downloads, fileURL)
	return destDir + "/" + fileURL[len(fileURL)-8:], nil
}

type memFavorites struct {
	items    []string
	replaced int
}

func (m *memFavorites) List() ([]string, error) {
	return append([]string(nil), m.items...), nil
}

func (m *memFavorites) Add(path string) error {
	m.items = append(m.items, path)
	return nil
}

func (m *memFavorites) Replace(favorites []string) error {
	m.replaced++
	m.items = append([]string(nil), favorites...)
	return nil
}

func (m *memFavorites) Path() string { return "memory" }

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
