package domain

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Site constants for the subtitle listing
const (
	DefaultBaseURL = "https://www.erai-raws.info/subs/"
	RootDir        = "Sub"
	CookieDomain   = "www.erai-raws.info"
	CookieHostLike = "erai"

	// ListingContainerID is the id of the element wrapping the directory entries
	ListingContainerID = "directory-listing"
	// SelfLinkSuffix marks the listing's link back to itself
	SelfLinkSuffix = "/subs/"
)

var fileExtRegex = regexp.MustCompile(`(?i)\.(zip|rar|7z|vtt|sub|ass|srt)$`)

// LinkKind tells a downloadable file from a directory reference
type LinkKind int

const (
	LinkKindDirectory LinkKind = iota
	LinkKindFile
)

func (k LinkKind) String() string {
	if k == LinkKindFile {
		return "file"
	}
	return "directory"
}

// ClassifyLink decides purely from the extension whether href is a file
func ClassifyLink(href string) LinkKind {
	if fileExtRegex.MatchString(href) {
		return LinkKindFile
	}
	return LinkKindDirectory
}

// IsFile reports whether href points at a subtitle or archive
func IsFile(href string) bool {
	return ClassifyLink(href) == LinkKindFile
}

// DisplayName returns the decoded text after the last "dir=" marker,
// or the whole link if there is none.
func DisplayName(href string) string {
	s := href
	if i := strings.LastIndex(href, "dir="); i >= 0 {
		s = href[i+len("dir="):]
	}
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

// DisplayNames maps DisplayName over links
func DisplayNames(links []string) []string {
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = DisplayName(l)
	}
	return names
}

// ResolveLink turns href into an absolute URL. Links already starting
// with "http" are returned verbatim, anything else is appended to baseURL.
func ResolveLink(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}

// DirURL builds the listing URL for a remote directory path
func DirURL(baseURL, dir string) string {
	return baseURL + "?dir=" + EscapeDir(dir)
}

// EscapeDir percent-encodes each segment of a directory path for use as
// a query value. Only the slashes stay literal.
func EscapeDir(dir string) string {
	parts := strings.Split(dir, "/")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(url.QueryEscape(p), "+", "%20")
	}
	return strings.Join(parts, "/")
}

// FileName returns the percent-decoded final path segment of a file URL.
// Separators revealed by decoding are dropped with the rest of the
// prefix. It returns "" when nothing usable as a file name remains.
func FileName(fileURL string) string {
	name := fileURL
	if i := strings.LastIndex(fileURL, "/"); i >= 0 {
		name = fileURL[i+1:]
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}
