package httpsession

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
)

// FetchListing GETs dirURL and returns the hrefs of its directory listing
func (s *Session) FetchListing(ctx context.Context, dirURL string) ([]string, error) {
	s.logger.Debug().Str("url", dirURL).Msg("fetching listing")

	resp, err := s.get(ctx, dirURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseListing(resp.Body)
}

// ParseListing finds the element with id domain.ListingContainerID and
// returns the href of every anchor inside it, skipping links that end
// with domain.SelfLinkSuffix. A page without the container yields
// application.ErrListingNotFound.
func ParseListing(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	container := findByID(doc, domain.ListingContainerID)
	if container == nil {
		return nil, application.ErrListingNotFound
	}

	links := []string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := attr(n, "href"); ok && !strings.HasSuffix(href, domain.SelfLinkSuffix) {
				links = append(links, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(container)

	return links, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}
