// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mesa/internal/domain/entity"
)

// IdempotencyStore is the port for the keyed response cache backing the
// idempotency guard. Writers only ever create-or-overwrite their own key,
// so no cross-key contention exists.
type IdempotencyStore interface {
	// Check looks up a cached response by key. A miss returns (nil, nil):
	// absence is a normal outcome, not an error.
	Check(ctx context.Context, key string) (*entity.IdempotencyRecord, error)

	// Store caches a completed response under the key for the given TTL.
	Store(ctx context.Context, record *entity.IdempotencyRecord, ttl time.Duration) error

	// Invalidate removes a cached response before its TTL elapses.
	Invalidate(ctx context.Context, key string) error
}
