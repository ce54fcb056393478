// Package storage handles the on-disk side of file attachments. Disk writes
// and database rows are separate operations; callers decide how to react to
// partial failure.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save writes src to dir/filename, creating dir if needed, and returns the
// stored path.
func Save(dir, filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// Open opens a stored file for reading
func Open(path string) (*os.File, error) {
	return os.Open(path)
}

// Remove deletes a stored file from disk
func Remove(path string) error {
	return os.Remove(path)
}
