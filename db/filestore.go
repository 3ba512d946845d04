package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"quizhub/models"
)

// FileStore persists the quiz state as a pretty-printed JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a file store at the given path. The file itself is
// created lazily on the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read loads the document from disk. A missing or corrupt file yields the
// empty default document.
func (s *FileStore) Read(ctx context.Context) (*models.StoreDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.NewStoreDocument(), nil
	}

	doc := models.NewStoreDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		log.Printf("Store file %s is not valid JSON, starting from empty state: %v", s.path, err)
		return models.NewStoreDocument(), nil
	}
	ensureDefaults(doc)
	return doc, nil
}

// Write persists the document atomically via a temp file and rename
func (s *FileStore) Write(ctx context.Context, doc *models.StoreDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// ensureDefaults repairs nil maps/slices after decoding a partial document
func ensureDefaults(doc *models.StoreDocument) {
	if doc.Users == nil {
		doc.Users = make(map[string]*models.User)
	}
	if doc.Tasks == nil {
		doc.Tasks = make(map[string]models.Task)
	}
	if doc.Answers == nil {
		doc.Answers = []models.Attempt{}
	}
	if doc.Banned == nil {
		doc.Banned = []string{}
	}
}
