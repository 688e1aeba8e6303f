package ports

import "context"

// ListingFetcher retrieves the links of a remote directory listing
type ListingFetcher interface {
	// FetchListing GETs dirURL and returns the hrefs found in the listing container
	FetchListing(ctx context.Context, dirURL string) ([]string, error)
}

// Downloader saves a remote file to local storage
type Downloader interface {
	// Download stores fileURL under destDir and returns the written path
	Download(ctx context.Context, fileURL, destDir string) (string, error)
}

// Session is the authenticated client used for every request in a run
type Session interface {
	ListingFetcher
	Downloader
}
