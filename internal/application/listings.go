package application

import (
	"context"
	"sync"

	"eraisubs/internal/ports"
)

// ListingCache keeps every directory listing fetched during the run.
// Entries are never evicted; a failed fetch leaves the cache untouched.
type ListingCache struct {
	fetcher ports.ListingFetcher

	mu      sync.Mutex
	entries map[string][]string
}

// NewListingCache creates an empty cache in front of fetcher
func NewListingCache(fetcher ports.ListingFetcher) *ListingCache {
	return &ListingCache{
		fetcher: fetcher,
		entries: make(map[string][]string),
	}
}

// Get returns the links under dirURL, fetching them on first use
func (c *ListingCache) Get(ctx context.Context, dirURL string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if links, ok := c.entries[dirURL]; ok {
		return links, nil
	}

	links, err := c.fetcher.FetchListing(ctx, dirURL)
	if err != nil {
		return nil, err
	}
	c.entries[dirURL] = links
	return links, nil
}

// Has reports whether dirURL has been fetched
func (c *ListingCache) Has(dirURL string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[dirURL]
	return ok
}

// Len returns the number of cached listings
func (c *ListingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
