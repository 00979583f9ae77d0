package watcher

import (
	"fmt"
	"os"
	"path/filepath"
)

// archive moves a processed recording into dir and returns its new path.
func archive(path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move to archive: %w", err)
	}
	return dest, nil
}
