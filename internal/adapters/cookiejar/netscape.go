package cookiejar

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/browserutils/kooky/browser/netscape"

	"eraisubs/internal/ports"
)

var magicRegex = regexp.MustCompile(`^#( Netscape)? HTTP Cookie File`)

// Reader implements ports.CookieJarReader for Netscape cookies.txt files
type Reader struct{}

// Ensure Reader implements CookieJarReader
var _ ports.CookieJarReader = (*Reader)(nil)

// NewReader creates a new cookie-jar reader
func NewReader() *Reader {
	return &Reader{}
}

// LoadCookies parses a cookies.txt file. Session and expired cookies are
// kept: expiry is dropped so every cookie lives for the whole run.
func (r *Reader) LoadCookies(path string) ([]*http.Cookie, error) {
	if err := checkHeader(path); err != nil {
		return nil, err
	}

	read, _, err := netscape.ReadCookies(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookie jar %s: %w", path, err)
	}

	cookies := make([]*http.Cookie, 0, len(read))
	for _, kc := range read {
		if kc == nil {
			continue
		}
		c := kc.Cookie
		c.Expires = time.Time{}
		c.MaxAge = 0
		if c.Path == "" {
			c.Path = "/"
		}
		cookies = append(cookies, &c)
	}
	return cookies, nil
}

// checkHeader rejects files without the cookies.txt magic line so that a
// cookie database or a stray file is not read as an empty jar
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open cookie jar: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("%s does not look like a Netscape cookie file", path)
	}
	if !magicRegex.MatchString(line) {
		return fmt.Errorf("%s does not look like a Netscape cookie file", path)
	}
	return nil
}
