package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"crocsdkr/repository"
)

// publicImagePrefix is the URL prefix all catalog images are served under
const publicImagePrefix = "/images/"

// LocalImageStorage stores images in a directory served as /images/
type LocalImageStorage struct {
	dir string
}

// NewLocalImageStorage creates a LocalImageStorage rooted at dir
// (typically public/images)
func NewLocalImageStorage(dir string) *LocalImageStorage {
	return &LocalImageStorage{dir: dir}
}

// Ensure LocalImageStorage implements ImageStorageInterface
var _ ImageStorageInterface = (*LocalImageStorage)(nil)

// Save writes the file and returns its public path
func (s *LocalImageStorage) Save(_ context.Context, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return publicImagePrefix + fileName, nil
}

// List returns the public paths of all images in the directory, sorted
func (s *LocalImageStorage) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	images := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, publicImagePrefix+entry.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

// Delete removes an image by its public path. The path must stay inside the
// images directory; traversal attempts are rejected.
func (s *LocalImageStorage) Delete(_ context.Context, publicPath string) error {
	fileName, err := confinedFileName(publicPath)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.dir, fileName)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// confinedFileName validates a public image path and returns the bare file
// name. Anything that escapes the /images/ directory is rejected.
func confinedFileName(publicPath string) (string, error) {
	if !strings.HasPrefix(publicPath, publicImagePrefix) {
		return "", ErrInvalidImagePath
	}
	fileName := strings.TrimPrefix(publicPath, publicImagePrefix)
	if fileName == "" {
		return "", ErrInvalidImagePath
	}
	cleaned := filepath.Clean(fileName)
	if cleaned != fileName || strings.Contains(cleaned, "..") ||
		strings.ContainsAny(cleaned, `/\`) {
		return "", ErrInvalidImagePath
	}
	return cleaned, nil
}
