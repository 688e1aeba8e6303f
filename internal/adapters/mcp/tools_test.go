package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"eraisubs/internal/application"
)

const testBase = "https://subs.example/subs/"

type fakeFetcher struct {
	listings map[string][]string
	calls    int
}

func (f *fakeFetcher) FetchListing(_ context.Context, dirURL string) ([]string, error) {
	f.calls++
	links, ok := f.listings[dirURL]
	if !ok {
		return nil, application.ErrListingNotFound
	}
	return links, nil
}

type fakeDownloader struct {
	gotURL  string
	gotDest string
	err     error
}

func (d *fakeDownloader) Download(_ context.Context, fileURL, destDir string) (string, error) {
	d.gotURL, d.gotDest = fileURL, destDir
	if d.err != nil {
		return "", d.err
	}
	return destDir + "/file.ass", nil
}

type memFavorites struct {
	paths []string
}

func (f *memFavorites) List() ([]string, error) { return f.paths, nil }

func (f *memFavorites) Add(p string) error {
	f.paths = append(f.paths, p)
	return nil
}

func (f *memFavorites) Replace(p []string) error {
	f.paths = p
	return nil
}

func (f *memFavorites) Path() string { return "mem" }

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestListDirectoryHandler(t *testing.T) {
	fetcher := &fakeFetcher{listings: map[string][]string{
		testBase + "?dir=Sub": {"?dir=Sub%2F2024", "Sub/2024/Show%20A.ass"},
	}}
	cache := application.NewListingCache(fetcher)
	h := listDirectoryHandler(cache, testBase)

	text, isErr := call(t, h, nil)
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), text)
	}
	if lines[0] != "directory\tSub/2024\t"+testBase+"?dir=Sub%2F2024" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "file\tSub/2024/Show A.ass\t"+testBase+"Sub/2024/Show%20A.ass" {
		t.Errorf("line 1 = %q", lines[1])
	}

	call(t, h, map[string]any{"dir": "/Sub/"})
	if fetcher.calls != 1 {
		t.Errorf("second call should be cached, fetches = %d", fetcher.calls)
	}
}

func TestListDirectoryHandler_Errors(t *testing.T) {
	cache := application.NewListingCache(&fakeFetcher{})
	h := listDirectoryHandler(cache, testBase)

	text, isErr := call(t, h, map[string]any{"dir": "Sub/2030"})
	if !isErr || !strings.Contains(text, "logged in") {
		t.Errorf("expected listing error, got %q (isError=%v)", text, isErr)
	}

	if _, isErr := call(t, h, map[string]any{"dir": "Sub\n2030"}); !isErr {
		t.Error("multi-line dir should be rejected")
	}
}

func TestDownloadHandler(t *testing.T) {
	d := &fakeDownloader{}
	h := downloadHandler(d, testBase)

	text, isErr := call(t, h, map[string]any{"link": "Sub/2024/a.ass", "dest": "/tmp/subs"})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	if d.gotURL != testBase+"Sub/2024/a.ass" || d.gotDest != "/tmp/subs" {
		t.Errorf("download called with %q, %q", d.gotURL, d.gotDest)
	}
	if text != "/tmp/subs/file.ass saved" {
		t.Errorf("text = %q", text)
	}
}

func TestDownloadHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		err  error
	}{
		{"missing link", map[string]any{}, nil},
		{"directory link", map[string]any{"link": "?dir=Sub%2F2024"}, nil},
		{"download fails", map[string]any{"link": "https://x.example/a.srt"}, errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := downloadHandler(&fakeDownloader{err: tt.err}, testBase)
			if text, isErr := call(t, h, tt.args); !isErr {
				t.Errorf("expected tool error, got %q", text)
			}
		})
	}
}

func TestFavoritesHandlers(t *testing.T) {
	repo := &memFavorites{}

	text, _ := call(t, listFavoritesHandler(repo), nil)
	if text != "No favorites." {
		t.Errorf("empty list text = %q", text)
	}

	if text, isErr := call(t, addFavoriteHandler(repo), map[string]any{"path": "  Sub/2024/Winter "}); isErr {
		t.Fatalf("add failed: %s", text)
	}
	if _, isErr := call(t, addFavoriteHandler(repo), map[string]any{"path": ""}); !isErr {
		t.Error("empty path should be rejected")
	}

	text, _ = call(t, listFavoritesHandler(repo), nil)
	if text != "Sub/2024/Winter" {
		t.Errorf("list text = %q", text)
	}
}
