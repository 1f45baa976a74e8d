package cart

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage persists blobs as files in a directory, one file per key
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Ensure FileStorage implements Storage
var _ Storage = (*FileStorage)(nil)

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the blob for key, or (nil, nil) when it was never written
func (s *FileStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes the blob for key
func (s *FileStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
