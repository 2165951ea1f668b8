package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/ports"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store[T any] struct {
	data map[string]history.History[T]
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[string]history.History[T]),
	}
}

// Save records the history in memory.
// History values are immutable, so no copy is needed for isolation.
func (s *Store[T]) Save(ctx context.Context, documentID string, h history.History[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[documentID] = h
	return nil
}

// Load retrieves the history from memory.
func (s *Store[T]) Load(ctx context.Context, documentID string) (history.History[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[documentID]
	if !ok {
		return history.History[T]{}, ports.ErrDocumentNotFound
	}
	return h, nil
}

// Delete removes the history.
func (s *Store[T]) Delete(ctx context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, documentID)
	return nil
}

// List returns known documents, sorted by ID.
func (s *Store[T]) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
