// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Create persists a new subscription row.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindCurrentByRestaurant retrieves the most recent subscription for a
	// restaurant (the head of its renewal lineage), or ErrSubscriptionNotFound
	// when the restaurant has never subscribed.
	FindCurrentByRestaurant(ctx context.Context, restaurantID uuid.UUID) (*entity.Subscription, error)

	// ListByRestaurant retrieves the full renewal history for a restaurant, newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Subscription, error)

	// FindOverdue retrieves every subscription with status ACTIVE and an end
	// date at or before the given instant. The sweep job's selection predicate:
	// deterministic, and self-shrinking as rows get expired.
	FindOverdue(ctx context.Context, now time.Time) ([]*entity.Subscription, error)

	// Update persists the mutable fields of an existing subscription (status, dates).
	Update(ctx context.Context, subscription *entity.Subscription) error

	// UpdateStatus transitions a subscription between two statuses as a single
	// atomic row update. Returns ErrStatusConflict when the row already left
	// the from status, which overlapping sweep runs treat as a benign no-op.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.SubscriptionStatus) error
}
