// Package tokenstore keeps the console's bearer token between requests.
//
// MemoryStore lives as long as the process (session-only storage), FileStore
// survives restarts, and Tiered combines the two behind a "remember me" switch.
package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore is session-only storage.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
