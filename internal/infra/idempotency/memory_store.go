package idempotency

import (
	"context"
	"sync"
	"time"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
)

type memoryEntry struct {
	record    entity.IdempotencyRecord
	expiresAt time.Time
}

// memoryStore is an in-process IdempotencyStore for tests and local development.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

// NewMemoryStore creates an in-memory idempotency store.
func NewMemoryStore() repository.IdempotencyStore {
	return &memoryStore{items: make(map[string]memoryEntry)}
}

// Check looks up a cached response by key. A miss returns (nil, nil).
func (s *memoryStore) Check(_ context.Context, key string) (*entity.IdempotencyRecord, error) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()

		return nil, nil
	}

	record := entry.record

	return &record, nil
}

// Store caches a completed response under the key for the given TTL.
func (s *memoryStore) Store(_ context.Context, record *entity.IdempotencyRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = entity.DefaultIdempotencyTTL
	}

	s.mu.Lock()
	s.items[record.Key] = memoryEntry{
		record:    *record,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()

	return nil
}

// Invalidate removes a cached response before its TTL elapses.
func (s *memoryStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()

	return nil
}
