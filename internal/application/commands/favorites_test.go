package commands

import (
	"context"
	"strings"
	"testing"
)

func TestRemoveFavoritesCommand(t *testing.T) {
	repo := &memFavorites{items: []string{"A", "B", "C"}}
	picker := &scriptedPicker{picks: [][]int{{2, 0}}}

	result, err := NewRemoveFavoritesCommand(repo, picker).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if strings.Join(repo.items, "\n") != "B" {
		t.Errorf("persisted favorites = %q, want %q", strings.Join(repo.items, "\n"), "B")
	}
	if repo.replaced != 1 {
		t.Errorf("favorites should be rewritten once, got %d", repo.replaced)
	}
	if strings.Join(result.Removed, ",") != "A,C" {
		t.Errorf("removed = %v", result.Removed)
	}
}

func TestRemoveFavoritesCommand_EmptyPick(t *testing.T) {
	repo := &memFavorites{items: []string{"A"}}

	result, err := NewRemoveFavoritesCommand(repo, &scriptedPicker{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if repo.replaced != 0 {
		t.Error("an empty pick should not rewrite the file")
	}
	if len(result.Remaining) != 1 {
		t.Errorf("remaining = %v", result.Remaining)
	}
}

func TestPickFavoriteCommand(t *testing.T) {
	repo := &memFavorites{items: []string{"Sub/2023/Fall/Show A", "Sub/2024/Winter/Show B"}}
	picker := &scriptedPicker{picks: [][]int{{1, 0}}}

	result, err := NewPickFavoriteCommand(repo, picker, base).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Cancelled {
		t.Fatal("pick should not be cancelled")
	}
	if result.URL != base+"?dir=Sub/2024/Winter/Show%20B" {
		t.Errorf("URL = %q", result.URL)
	}
}

func TestPickFavoriteCommand_Cancelled(t *testing.T) {
	repo := &memFavorites{items: []string{"Sub/2023"}}

	result, err := NewPickFavoriteCommand(repo, &scriptedPicker{}, base).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Cancelled || result.URL != "" {
		t.Errorf("expected a cancelled result, got %+v", result)
	}
}

func TestAddFavoriteCommand(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid", "  Sub/2024/Fall/Show  ", false},
		{"empty", "", true},
		{"multi-line", "Sub/2024\nSub/2023", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memFavorites{}
			_, err := NewAddFavoriteCommand(repo, tt.path).Execute(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (len(repo.items) != 1 || repo.items[0] != "Sub/2024/Fall/Show") {
				t.Errorf("stored %v", repo.items)
			}
		})
	}
}
