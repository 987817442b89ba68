package kv

import (
	"context"
	"strings"
	"sync"
)

// InMemStore is the test double for Store. A map under a mutex is all it
// needs; no third-party store is justified for a fixture.
type InMemStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewInMemStore() *InMemStore {
	return &InMemStore{items: make(map[string][]byte)}
}

func (s *InMemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *InMemStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	return nil
}

func (s *InMemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *InMemStore) ListPrefix(_ context.Context, prefix string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]byte)
	for key, value := range s.items {
		if strings.HasPrefix(key, prefix) {
			out := make([]byte, len(value))
			copy(out, value)
			result[key] = out
		}
	}
	return result, nil
}

func (s *InMemStore) Close() error {
	return nil
}

// Len reports the number of stored keys; test assertions use it to check a
// store was left untouched.
func (s *InMemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
