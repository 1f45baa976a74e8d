package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists one JSON document to a local file. This is the default
// backend when no database is configured.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Ensure FileStore implements DocumentStore
var _ DocumentStore = (*FileStore)(nil)

// Read returns the file contents, or (nil, nil) when the file does not exist
func (s *FileStore) Read(_ context.Context) (json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

// Write replaces the file contents, pretty-printed so the documents stay
// hand-editable like the originals
func (s *FileStore) Write(_ context.Context, doc json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var pretty interface{}
	if err := json.Unmarshal(doc, &pretty); err != nil {
		return fmt.Errorf("invalid document for %s: %w", s.path, err)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// seededStore reads from primary and, when the document is absent, seeds the
// primary from a fallback store (the local JSON file shipped with the repo).
// Mirrors the first-read migration behavior of the hosted setup.
type seededStore struct {
	primary DocumentStore
	seed    DocumentStore
}

// NewSeededStore wraps primary so an empty document is populated from seed
// on first read
func NewSeededStore(primary, seed DocumentStore) DocumentStore {
	return &seededStore{primary: primary, seed: seed}
}

func (s *seededStore) Read(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.primary.Read(ctx)
	if err != nil || doc != nil {
		return doc, err
	}

	seedDoc, err := s.seed.Read(ctx)
	if err != nil || seedDoc == nil {
		return nil, err
	}
	if err := s.primary.Write(ctx, seedDoc); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	return seedDoc, nil
}

func (s *seededStore) Write(ctx context.Context, doc json.RawMessage) error {
	return s.primary.Write(ctx, doc)
}
