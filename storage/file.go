package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore persists the widget state map as a single JSON file. The whole
// map is rewritten on every mutation, which is fine at widget-state scale.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

func (s *FileStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
