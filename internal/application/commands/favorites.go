package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// PickFavoriteResult contains the favorite chosen to start browsing from
type PickFavoriteResult struct {
	Favorite  string
	URL       string
	Cancelled bool
}

// PickFavoriteCommand lets the user choose a favorite directory
type PickFavoriteCommand struct {
	repo    ports.FavoritesRepository
	picker  ports.Picker
	BaseURL string
}

// NewPickFavoriteCommand creates a new PickFavoriteCommand
func NewPickFavoriteCommand(repo ports.FavoritesRepository, picker ports.Picker, baseURL string) *PickFavoriteCommand {
	return &PickFavoriteCommand{repo: repo, picker: picker, BaseURL: baseURL}
}

// Execute shows the favorites and returns the listing URL of the first
// one picked. Extra picks are ignored.
func (c *PickFavoriteCommand) Execute(ctx context.Context) (*PickFavoriteResult, error) {
	favorites, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	sel, err := c.picker.Select(ctx, favorites)
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	if len(sel) == 0 {
		return &PickFavoriteResult{Cancelled: true}, nil
	}

	i := sel[0]
	if i < 0 || i >= len(favorites) {
		return nil, fmt.Errorf("picker returned index %d for %d favorites", i, len(favorites))
	}

	return &PickFavoriteResult{
		Favorite: favorites[i],
		URL:      domain.DirURL(c.BaseURL, favorites[i]),
	}, nil
}

// RemoveFavoritesResult contains the result of a removal
type RemoveFavoritesResult struct {
	Removed   []string
	Remaining []string
	Message   string
}

// RemoveFavoritesCommand deletes the favorites the user picks
type RemoveFavoritesCommand struct {
	repo   ports.FavoritesRepository
	picker ports.Picker
}

// NewRemoveFavoritesCommand creates a new RemoveFavoritesCommand
func NewRemoveFavoritesCommand(repo ports.FavoritesRepository, picker ports.Picker) *RemoveFavoritesCommand {
	return &RemoveFavoritesCommand{repo: repo, picker: picker}
}

// Execute removes every picked index and rewrites the favorites file once.
// An empty pick leaves the file alone.
func (c *RemoveFavoritesCommand) Execute(ctx context.Context) (*RemoveFavoritesResult, error) {
	favorites, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	sel, err := c.picker.Select(ctx, favorites)
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	if len(sel) == 0 {
		return &RemoveFavoritesResult{Remaining: favorites, Message: "No favorites removed"}, nil
	}

	sort.Ints(sel)
	var removed []string
	for _, i := range sel {
		if i >= 0 && i < len(favorites) {
			removed = append(removed, favorites[i])
		}
	}

	remaining := domain.RemoveIndices(favorites, sel)
	if err := c.repo.Replace(remaining); err != nil {
		return nil, fmt.Errorf("failed to save favorites: %w", err)
	}

	return &RemoveFavoritesResult{
		Removed:   removed,
		Remaining: remaining,
		Message:   fmt.Sprintf("Removed %d favorite(s)", len(removed)),
	}, nil
}

// AddFavoriteCommand appends a directory path to the favorites
type AddFavoriteCommand struct {
	repo ports.FavoritesRepository
	Path string
}

// NewAddFavoriteCommand creates a new AddFavoriteCommand
func NewAddFavoriteCommand(repo ports.FavoritesRepository, path string) *AddFavoriteCommand {
	return &AddFavoriteCommand{repo: repo, Path: path}
}

// Validate checks if the favorite is a usable single-line path
func (c *AddFavoriteCommand) Validate() error {
	if err := application.ValidateRequired("favorite", c.Path); err != nil {
		return err
	}
	return application.ValidateSingleLine("favorite", c.Path)
}

// Execute appends the favorite
func (c *AddFavoriteCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	path := strings.TrimSpace(c.Path)
	if err := c.repo.Add(path); err != nil {
		return "", fmt.Errorf("failed to add favorite: %w", err)
	}
	return fmt.Sprintf("Added %s to favorites", path), nil
}

// ListFavoritesCommand returns the stored favorites
type ListFavoritesCommand struct {
	repo ports.FavoritesRepository
}

// NewListFavoritesCommand creates a new ListFavoritesCommand
func NewListFavoritesCommand(repo ports.FavoritesRepository) *ListFavoritesCommand {
	return &ListFavoritesCommand{repo: repo}
}

// Execute lists the favorites
func (c *ListFavoritesCommand) Execute(ctx context.Context) ([]string, error) {
	favorites, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return favorites, nil
}
