// Package session persists conversation history in a key-value store.
// The store itself is an external collaborator; this package owns the
// key scheme, the serialization, and the best-effort failure policy.
package session

import (
	"context"
	"sync"
)

// KV is the minimal contract of the session store backend.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// MemoryKV is a mutex-guarded in-process store used in development and
// tests. History lifecycle (expiry) belongs to real backends.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV bootstraps an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryKV) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
