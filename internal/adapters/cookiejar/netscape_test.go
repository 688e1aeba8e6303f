package cookiejar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCookies(t *testing.T) {
	path := writeJar(t, "# Netscape HTTP Cookie File\n"+
		"# comment line\n"+
		"\n"+
		".erai-raws.info\tTRUE\t/\tTRUE\t1\tsession\tabc123\n"+
		"#HttpOnly_www.erai-raws.info\tFALSE\t/subs\tFALSE\t4102444800\ttoken\txyz\n")

	cookies, err := NewReader().LoadCookies(path)
	if err != nil {
		t.Fatalf("LoadCookies failed: %v", err)
	}

	byName := make(map[string]int)
	for i, c := range cookies {
		byName[c.Name] = i
		if !c.Expires.IsZero() {
			t.Errorf("cookie %s should be loaded without an expiry, got %v", c.Name, c.Expires)
		}
	}

	i, ok := byName["session"]
	if !ok {
		t.Fatalf("expired session cookie was dropped: %+v", cookies)
	}
	session := cookies[i]
	if session.Value != "abc123" || strings.TrimPrefix(session.Domain, ".") != "erai-raws.info" || !session.Secure {
		t.Errorf("unexpected session cookie: %+v", session)
	}

	i, ok = byName["token"]
	if !ok {
		t.Fatalf("http-only cookie was dropped: %+v", cookies)
	}
	token := cookies[i]
	if !token.HttpOnly || token.Path != "/subs" || token.Value != "xyz" || token.Secure {
		t.Errorf("unexpected http-only cookie: %+v", token)
	}
	if strings.TrimPrefix(token.Domain, ".") != "www.erai-raws.info" {
		t.Errorf("token domain = %q", token.Domain)
	}
}

func TestLoadCookies_HeaderOnly(t *testing.T) {
	cookies, err := NewReader().LoadCookies(writeJar(t, "# Netscape HTTP Cookie File\n"))
	if err != nil {
		t.Fatalf("LoadCookies failed: %v", err)
	}
	if len(cookies) != 0 {
		t.Errorf("expected no cookies, got %d", len(cookies))
	}
}

func TestLoadCookies_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing header", ".erai-raws.info\tTRUE\t/\tTRUE\t0\tsession\tabc\n"},
		{"binary data", "SQLite format 3\x00\x10\x00"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewReader().LoadCookies(writeJar(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := NewReader().LoadCookies(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
