package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultKey is the storage key the token is kept under.
const DefaultKey = "token"

// FileStore is persistent key-value storage in a JSON file. Only the entry
// under its key is touched; other keys in the file are preserved.
type FileStore struct {
	path string
	key  string

	mu      sync.RWMutex
	entries map[string]string
}

func NewFileStore(path, key string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("token file path is required")
	}
	if key == "" {
		key = DefaultKey
	}

	s := &FileStore{
		path:    path,
		key:     key,
		entries: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[s.key], nil
}

func (s *FileStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.copyLocked()
	next[s.key] = token
	return s.commitLocked(next)
}

func (s *FileStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[s.key]; !ok {
		return nil
	}
	next := s.copyLocked()
	delete(next, s.key)
	return s.commitLocked(next)
}

func (s *FileStore) copyLocked() map[string]string {
	next := make(map[string]string, len(s.entries)+1)
	for k, v := range s.entries {
		next[k] = v
	}
	return next
}

// commitLocked writes next to disk and only then makes it the in-memory view,
// so a failed write leaves both untouched.
func (s *FileStore) commitLocked(next map[string]string) error {
	if err := s.persist(next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

func (s *FileStore) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &s.entries); err != nil {
		return fmt.Errorf("decode token file: %w", err)
	}
	return nil
}

func (s *FileStore) persist(entries map[string]string) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}
