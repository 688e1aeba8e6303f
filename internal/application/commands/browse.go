package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// BrowseResult contains the outcome of a browsing session
type BrowseResult struct {
	Downloaded []string
	Visited    int
	Message    string
}

// BrowseCommand walks the remote listing: it shows the current directory
// through the picker, downloads chosen files and descends into chosen
// directories until the user picks nothing.
type BrowseCommand struct {
	session ports.Session
	picker  ports.Picker
	cache   *application.ListingCache
	out     io.Writer
	logger  zerolog.Logger

	BaseURL string
	DestDir string

	current    string
	downloaded []string
}

// NewBrowseCommand creates a new BrowseCommand starting at startURL
func NewBrowseCommand(session ports.Session, picker ports.Picker, baseURL, startURL, destDir string, out io.Writer, logger zerolog.Logger) *BrowseCommand {
	return &BrowseCommand{
		session: session,
		picker:  picker,
		cache:   application.NewListingCache(session),
		out:     out,
		logger:  logger,
		BaseURL: baseURL,
		DestDir: destDir,
		current: startURL,
	}
}

// Validate checks if the browse command is valid
func (c *BrowseCommand) Validate() error {
	if err := application.ValidateRequired("startURL", c.current); err != nil {
		return err
	}
	return application.ValidateRequired("baseURL", c.BaseURL)
}

// CurrentURL returns the directory the next step will list
func (c *BrowseCommand) CurrentURL() string {
	return c.current
}

// Cache exposes the listings fetched so far
func (c *BrowseCommand) Cache() *application.ListingCache {
	return c.cache
}

// Execute runs the browse loop until an empty pick
func (c *BrowseCommand) Execute(ctx context.Context) (*BrowseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	for {
		more, err := c.Step(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return &BrowseResult{
		Downloaded: c.downloaded,
		Visited:    c.cache.Len(),
		Message:    fmt.Sprintf("Downloaded %d file(s) from %d director(ies)", len(c.downloaded), c.cache.Len()),
	}, nil
}

// Step lists the current directory once and applies the user's pick.
// It returns false when the pick was empty.
//
// Files are downloaded in pick order without moving. When several
// directories are picked the last one becomes the current directory.
func (c *BrowseCommand) Step(ctx context.Context) (bool, error) {
	c.logger.Info().Str("url", c.current).Msg("listing")

	links, err := c.cache.Get(ctx, c.current)
	if err != nil {
		return false, err
	}

	sel, err := c.picker.Select(ctx, domain.DisplayNames(links))
	if err != nil {
		return false, fmt.Errorf("picker failed: %w", err)
	}
	if len(sel) == 0 {
		return false, nil
	}

	next := c.current
	dirs := 0
	for _, i := range sel {
		if i < 0 || i >= len(links) {
			return false, fmt.Errorf("picker returned index %d for %d entries", i, len(links))
		}
		href := links[i]
		target := domain.ResolveLink(c.BaseURL, href)

		if domain.IsFile(href) {
			path, err := c.session.Download(ctx, target, c.DestDir)
			if err != nil {
				return false, err
			}
			fmt.Fprintf(c.out, "%s saved\n", path)
			c.downloaded = append(c.downloaded, path)
			continue
		}

		next = target
		dirs++
	}

	if dirs > 1 {
		c.logger.Warn().Int("directories", dirs).Str("url", next).Msg("several directories picked, opening the last one")
	}
	c.current = next
	return true, nil
}
