package application

import (
	"context"
	"errors"
	"testing"
)

type countingFetcher struct {
	listings map[string][]string
	err      error
	calls    map[string]int
}

func (f *countingFetcher) FetchListing(_ context.Context, dirURL string) ([]string, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[dirURL]++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings[dirURL], nil
}

func TestListingCache_FetchesOnce(t *testing.T) {
	url := "https://www.erai-raws.info/subs/?dir=Sub"
	fetcher := &countingFetcher{listings: map[string][]string{url: {"?dir=Sub/2024"}}}
	cache := NewListingCache(fetcher)

	for i := 0; i < 2; i++ {
		links, err := cache.Get(context.Background(), url)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(links) != 1 || links[0] != "?dir=Sub/2024" {
			t.Errorf("links = %v", links)
		}
	}

	if fetcher.calls[url] != 1 {
		t.Errorf("expected 1 request, got %d", fetcher.calls[url])
	}
	if cache.Len() != 1 || !cache.Has(url) {
		t.Errorf("cache should hold exactly %s", url)
	}
}

func TestListingCache_ErrorNotCached(t *testing.T) {
	url := "https://www.erai-raws.info/subs/?dir=Sub"
	fetcher := &countingFetcher{err: ErrListingNotFound}
	cache := NewListingCache(fetcher)

	if _, err := cache.Get(context.Background(), url); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("failed fetch should leave the cache empty, got %d entries", cache.Len())
	}
}
