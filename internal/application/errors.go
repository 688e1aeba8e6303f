package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrCookiesRequired = errors.New("cookies are required")
	ErrListingNotFound = errors.New("nothing found, check if you are logged in")
	ErrBadStatus       = errors.New("unexpected response status")
	ErrInvalidCookie   = errors.New("invalid cookie")
	ErrInvalidFileName = errors.New("link has no usable file name")
)

// StatusError represents a non-successful HTTP response
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// CookieLoadError reports that neither the cookie database nor the
// cookie-jar reading of a cookie file succeeded
type CookieLoadError struct {
	Path     string
	Database error
	Jar      error
}

func (e *CookieLoadError) Error() string {
	return fmt.Sprintf("cannot load cookies from %s: database: %v; cookie jar: %v", e.Path, e.Database, e.Jar)
}

func (e *CookieLoadError) Unwrap() []error {
	return []error{e.Database, e.Jar}
}

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
