package history

import (
	"context"
	"sync"
)

// MemoryStore keeps the history for the lifetime of the process
type MemoryStore struct {
	mutex   sync.RWMutex
	seen    map[string]struct{}
	entries []string
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory history
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seen: make(map[string]struct{}),
	}
}

// Add appends city if it has not been recorded before
func (s *MemoryStore) Add(_ context.Context, city string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.seen[city]; found {
		return nil
	}
	s.seen[city] = struct{}{}
	s.entries = append(s.entries, city)
	return nil
}

// List returns a copy of the entries in insertion order
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
