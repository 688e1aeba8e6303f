package domain

import "net/http"

// CookieSource records where the session cookies came from
type CookieSource int

const (
	CookieSourceUnresolved CookieSource = iota
	CookieSourceDatabase
	CookieSourceJar
	CookieSourceString
)

func (s CookieSource) String() string {
	switch s {
	case CookieSourceDatabase:
		return "database"
	case CookieSourceJar:
		return "cookie-jar"
	case CookieSourceString:
		return "cookie-string"
	default:
		return "unresolved"
	}
}

// CookieSet is the result of loading cookies. Each cookie carries the
// domain it is scoped to.
type CookieSet struct {
	Source  CookieSource
	Cookies []*http.Cookie
}

// Resolved reports whether a cookie source was found
func (c CookieSet) Resolved() bool {
	return c.Source != CookieSourceUnresolved
}
