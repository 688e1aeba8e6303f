package ports

// FavoritesRepository persists remembered remote directory paths
type FavoritesRepository interface {
	// List returns the favorites in file order
	List() ([]string, error)

	// Add appends a single path
	Add(path string) error

	// Replace rewrites the whole list in one shot
	Replace(favorites []string) error

	// Path returns the backing file location
	Path() string
}
