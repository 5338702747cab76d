package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalAvatarStorage stores objects as files under a base directory.
// This is the default backend for single-instance deployments.
type LocalAvatarStorage struct {
	baseDir string
}

// NewLocalAvatarStorage creates the base directory if needed and returns the store
func NewLocalAvatarStorage(baseDir string) (*LocalAvatarStorage, error) {
	if baseDir == "" {
		return nil, errors.New("storage base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalAvatarStorage{baseDir: baseDir}, nil
}

// Save writes data under the given key, replacing any existing object
func (s *LocalAvatarStorage) Save(_ context.Context, key string, data []byte, _ string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *LocalAvatarStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Exists reports whether an object is stored under the key
func (s *LocalAvatarStorage) Exists(_ context.Context, key string) (bool, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// BaseDir returns the root directory of the store
func (s *LocalAvatarStorage) BaseDir() string {
	return s.baseDir
}

// resolve maps a key to a path inside baseDir, rejecting traversal
func (s *LocalAvatarStorage) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}

// Ensure LocalAvatarStorage implements AvatarStorage
var _ AvatarStorage = (*LocalAvatarStorage)(nil)
