package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and when no Redis
// is configured. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string, key Key) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[storageKey(sessionID, key)]
	return val, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, key Key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[storageKey(sessionID, key)] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, storageKey(sessionID, key))
	return nil
}
