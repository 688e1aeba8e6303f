package config

import (
	"net/url"
	"os"
	"path/filepath"

	"eraisubs/internal/domain"
)

const (
	appName           = "eraisubs"
	settingsFileName  = "config.json"
	favoritesFileName = "favorites.txt"
)

// Dir returns the data directory from ERAISUBS_HOME,
// falling back to <user config dir>/eraisubs.
func Dir() string {
	if env := os.Getenv("ERAISUBS_HOME"); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// SettingsPath returns the location of the JSON settings file
func SettingsPath() string {
	return filepath.Join(Dir(), settingsFileName)
}

// FavoritesPath returns the location of the favorites file
func FavoritesPath() string {
	return filepath.Join(Dir(), favoritesFileName)
}

// BaseURL returns the listing base URL from ERAISUBS_BASE_URL,
// falling back to domain.DefaultBaseURL.
func BaseURL() string {
	if env := os.Getenv("ERAISUBS_BASE_URL"); env != "" {
		return env
	}
	return domain.DefaultBaseURL
}

// CookieDomain returns the host cookies from a raw cookie string are
// scoped to: the host of baseURL, or domain.CookieDomain if it has none.
func CookieDomain(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return domain.CookieDomain
	}
	return u.Hostname()
}
