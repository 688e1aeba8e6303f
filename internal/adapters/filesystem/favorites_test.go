package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFavoritesRepository_MissingFile(t *testing.T) {
	repo := NewFavoritesRepository(filepath.Join(t.TempDir(), "favorites.txt"))

	favs, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("expected no favorites, got %v", favs)
	}
}

func TestFavoritesRepository_ReplaceWritesJoinedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.txt")
	repo := NewFavoritesRepository(path)

	if err := repo.Replace([]string{"B"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "B" {
		t.Errorf("file content = %q, want %q", data, "B")
	}
}

func TestFavoritesRepository_AddAfterReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.txt")
	repo := NewFavoritesRepository(path)

	if err := repo.Add("Sub/2024/Fall/Show A"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := repo.Replace([]string{"Sub/2024/Fall/Show A", "Sub/2023"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := repo.Add("Sub/2025/Winter"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	favs, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"Sub/2024/Fall/Show A", "Sub/2023", "Sub/2025/Winter"}
	if strings.Join(favs, "|") != strings.Join(want, "|") {
		t.Errorf("favorites = %v, want %v", favs, want)
	}
}

func TestNewFavoritesRepository_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	repo := NewFavoritesRepository("~/eraisubs/favorites.txt")
	if repo.Path() != filepath.Join(home, "eraisubs", "favorites.txt") {
		t.Errorf("Path = %q", repo.Path())
	}
}
