package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"eraisubs/internal/adapters/tui"
)

func TestNewPicker(t *testing.T) {
	defer func(old string) { pickerName = old }(pickerName)

	pickerName = "builtin"
	p, err := newPicker(nil)
	if err != nil {
		t.Fatalf("newPicker: %v", err)
	}
	if _, ok := p.(*tui.Picker); !ok {
		t.Errorf("got %T, want *tui.Picker", p)
	}

	pickerName = "dmenu"
	if _, err := newPicker(nil); err == nil {
		t.Error("expected error for unknown picker")
	}
}

func TestFavoriteAction(t *testing.T) {
	defer func(old string) { favoritesFile = old }(favoritesFile)
	favoritesFile = "/tmp/my favs.txt"

	action := favoriteAction()
	if !strings.Contains(action, "favorites add --favorites-file '/tmp/my favs.txt' -- {2..}") {
		t.Errorf("action = %q", action)
	}
}

func TestFavoritesSubcommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.txt")

	rootCmd.SetArgs([]string{"favorites", "add", "--favorites-file", path, "Sub/2024/Winter"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("favorites add: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"favorites", "list", "--favorites-file", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("favorites list: %v", err)
	}
	if out.String() != "Sub/2024/Winter\n" {
		t.Errorf("list output = %q", out.String())
	}
}
