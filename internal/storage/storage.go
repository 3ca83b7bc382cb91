// Package storage persists exported documents on the local filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// localStorage implements the export store using the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// generatePath builds the full path for an exported document, namespaced by plan ID
// so repeated exports of different plans with the same topic never collide.
func (s *localStorage) generatePath(planID, filename string) string {
	return filepath.Join(s.basePath, planID, filename)
}

// Save writes the document contents, creating parent directories as needed.
func (s *localStorage) Save(planID, filename string, content []byte) error {
	path := s.generatePath(planID, filename)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// Open reads a previously saved document.
func (s *localStorage) Open(planID, filename string) ([]byte, error) {
	return os.ReadFile(s.generatePath(planID, filename))
}

// Delete removes a saved document.
func (s *localStorage) Delete(planID, filename string) error {
	return os.Remove(s.generatePath(planID, filename))
}
