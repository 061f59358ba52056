package storage

import (
	"os"
)

// Remover deletes files from the image store
type Remover interface {
	Remove(path string) error
}

// LocalStore removes files from the local filesystem
type LocalStore struct{}

// NewLocalStore creates a filesystem-backed store
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Remove unlinks a single file. A missing file is an error.
func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}
