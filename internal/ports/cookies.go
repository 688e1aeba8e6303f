package ports

import "net/http"

// CookieDatabase reads site cookies from a browser cookie store
type CookieDatabase interface {
	// LoadCookies returns the cookies whose host contains hostLike
	LoadCookies(path, hostLike string) ([]*http.Cookie, error)
}

// CookieJarReader reads a Netscape-format cookie jar file
type CookieJarReader interface {
	LoadCookies(path string) ([]*http.Cookie, error)
}
