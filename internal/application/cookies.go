package application

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// CookieLoader resolves the session cookies from a cookie file or a raw
// cookie string
type CookieLoader struct {
	db     ports.CookieDatabase
	jar    ports.CookieJarReader
	logger zerolog.Logger
}

// NewCookieLoader creates a new CookieLoader
func NewCookieLoader(db ports.CookieDatabase, jar ports.CookieJarReader, logger zerolog.Logger) *CookieLoader {
	return &CookieLoader{db: db, jar: jar, logger: logger}
}

// Load tries, in order, the cookie file as a browser database, the cookie
// file as a Netscape cookie jar, then the cookie string. Without either
// input it returns ErrCookiesRequired.
func (l *CookieLoader) Load(cookieFile, cookieString, cookieDomain string) (domain.CookieSet, error) {
	switch {
	case cookieFile != "":
		return l.loadFile(cookieFile)

	case cookieString != "":
		cookies, err := ParseCookieString(cookieString, cookieDomain)
		if err != nil {
			return domain.CookieSet{}, err
		}
		return domain.CookieSet{Source: domain.CookieSourceString, Cookies: cookies}, nil

	default:
		return domain.CookieSet{}, ErrCookiesRequired
	}
}

func (l *CookieLoader) loadFile(path string) (domain.CookieSet, error) {
	cookies, dbErr := l.db.LoadCookies(path, domain.CookieHostLike)
	if dbErr == nil {
		if len(cookies) == 0 {
			l.logger.Warn().Str("file", path).Msg("cookie database has no cookies for the site")
		}
		return domain.CookieSet{Source: domain.CookieSourceDatabase, Cookies: cookies}, nil
	}
	l.logger.Debug().Err(dbErr).Str("file", path).Msg("not a cookie database, trying cookie jar")

	cookies, jarErr := l.jar.LoadCookies(path)
	if jarErr != nil {
		return domain.CookieSet{}, &CookieLoadError{Path: path, Database: dbErr, Jar: jarErr}
	}
	return domain.CookieSet{Source: domain.CookieSourceJar, Cookies: cookies}, nil
}

// ParseCookieString parses "name=value; name2=value2" into cookies
// scoped to cookieDomain. Empty segments are skipped.
func ParseCookieString(s, cookieDomain string) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	for _, segment := range strings.Split(s, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		name, value, ok := strings.Cut(segment, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q is not name=value", ErrInvalidCookie, strings.TrimSpace(segment))
		}
		cookies = append(cookies, &http.Cookie{
			Name:   name,
			Value:  strings.TrimSpace(value),
			Domain: cookieDomain,
			Path:   "/",
		})
	}
	if len(cookies) == 0 {
		return nil, fmt.Errorf("%w: empty cookie string", ErrInvalidCookie)
	}
	return cookies, nil
}
