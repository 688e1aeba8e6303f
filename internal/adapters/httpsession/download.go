package httpsession

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
)

// Download streams fileURL into destDir, named after the URL's decoded
// final segment. An existing file of the same name is overwritten.
func (s *Session) Download(ctx context.Context, fileURL, destDir string) (string, error) {
	path := domain.FileName(fileURL)
	if path == "" {
		return "", fmt.Errorf("%w: %s", application.ErrInvalidFileName, fileURL)
	}
	if destDir != "" {
		path = filepath.Join(destDir, path)
	}

	resp, err := s.get(ctx, fileURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int64("bytes", n).Msg("downloaded")
	return path, nil
}
