package ports

import "context"

// Picker presents items to the user and returns the chosen indices.
// An empty result means the user cancelled or confirmed nothing.
type Picker interface {
	Select(ctx context.Context, items []string) ([]int, error)
}
