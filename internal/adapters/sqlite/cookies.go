package sqlite

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"eraisubs/internal/ports"
)

// CookieStore implements ports.CookieDatabase over a Chromium-style
// cookie database (Chromium, qutebrowser, Brave...)
type CookieStore struct{}

// Ensure CookieStore implements CookieDatabase
var _ ports.CookieDatabase = (*CookieStore)(nil)

// NewCookieStore creates a new cookie database reader
func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

// LoadCookies opens path read-only and returns the cookies whose host_key
// contains hostLike, each scoped to its host_key.
func (s *CookieStore) LoadCookies(path, hostLike string) ([]*http.Cookie, error) {
	// nolock lets us read while the browser holds the database open
	db, err := sql.Open("sqlite3", databaseURI(path, "mode=ro&nolock=1"))
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT host_key, name, value FROM cookies
		WHERE host_key LIKE ?
	`, "%"+hostLike+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query cookies: %w", err)
	}
	defer rows.Close()

	var cookies []*http.Cookie
	for rows.Next() {
		var host, name, value string
		if err := rows.Scan(&host, &name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cookie: %w", err)
		}
		cookies = append(cookies, &http.Cookie{
			Name:   name,
			Value:  value,
			Domain: host,
			Path:   "/",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}

	return cookies, nil
}

// databaseURI builds a file: URI for path, escaping characters such as
// '?', '#' and '%' that would otherwise be read as URI syntax
func databaseURI(path, query string) string {
	// relative paths would be read as the URI authority
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: query}
	return u.String()
}
