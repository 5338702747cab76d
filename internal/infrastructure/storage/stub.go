package storage

import (
	"context"
	"errors"
	"sync"
)

// InMemoryAvatarStorage keeps objects in a map.
// Use this for development and tests where no real backend is available.
type InMemoryAvatarStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewInMemoryAvatarStorage creates a new InMemoryAvatarStorage
func NewInMemoryAvatarStorage() *InMemoryAvatarStorage {
	return &InMemoryAvatarStorage{
		objects: make(map[string][]byte),
	}
}

// Ensure InMemoryAvatarStorage implements AvatarStorage
var _ AvatarStorage = (*InMemoryAvatarStorage)(nil)

// Save stores data under the given key, replacing any existing object
func (s *InMemoryAvatarStorage) Save(_ context.Context, key string, data []byte, _ string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.objects[key] = copied
	return nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *InMemoryAvatarStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Exists reports whether an object is stored under the key
func (s *InMemoryAvatarStorage) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// Get returns a stored object, for test assertions
func (s *InMemoryAvatarStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (s *InMemoryAvatarStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
