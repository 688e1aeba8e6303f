package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// FavoritesRepository implements ports.FavoritesRepository with a plain
// text file holding one remote directory path per line
type FavoritesRepository struct {
	path string
}

// Ensure FavoritesRepository implements FavoritesRepository
var _ ports.FavoritesRepository = (*FavoritesRepository)(nil)

// NewFavoritesRepository creates a repository backed by path
func NewFavoritesRepository(path string) *FavoritesRepository {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &FavoritesRepository{path: path}
}

// Path returns the favorites file location
func (r *FavoritesRepository) Path() string {
	return r.path
}

// List returns the favorites; a missing file means no favorites yet
func (r *FavoritesRepository) List() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	return domain.ParseFavorites(string(data)), nil
}

// Add appends favorite on its own line
func (r *FavoritesRepository) Add(favorite string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open favorites: %w", err)
	}
	defer f.Close()

	line := favorite + "\n"
	// Replace writes no trailing newline
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			line = "\n" + line
		}
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

// Replace rewrites the file with favorites joined by newlines
func (r *FavoritesRepository) Replace(favorites []string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(domain.FormatFavorites(favorites)), 0o644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}
