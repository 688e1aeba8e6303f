package httpsession

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// DefaultUserAgent is sent with every request
const DefaultUserAgent = "Mozilla/5.0"

// Session implements ports.Session with an http.Client carrying the
// site cookies and a fixed User-Agent
type Session struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// Ensure Session implements Session
var _ ports.Session = (*Session)(nil)

// Option configures the Session
type Option func(*Session)

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *Session) {
		s.userAgent = ua
	}
}

// WithLogger sets the logger for request diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session holding cookies. It fails with
// application.ErrCookiesRequired when no cookie source was resolved.
func New(cookies domain.CookieSet, opts ...Option) (*Session, error) {
	if !cookies.Resolved() {
		return nil, application.ErrCookiesRequired
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	s := &Session{
		client:    &http.Client{Jar: jar},
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, c := range cookies.Cookies {
		host := strings.TrimPrefix(c.Domain, ".")
		if host == "" {
			continue
		}
		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, []*http.Cookie{c})
	}
	s.logger.Debug().
		Str("source", cookies.Source.String()).
		Int("cookies", len(cookies.Cookies)).
		Msg("session ready")

	return s, nil
}

// Cookies returns the cookies the session would send to rawURL
func (s *Session) Cookies(rawURL string) []*http.Cookie {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return s.client.Jar.Cookies(u)
}

func (s *Session) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &application.StatusError{URL: rawURL, Status: resp.StatusCode}
	}
	return resp, nil
}
