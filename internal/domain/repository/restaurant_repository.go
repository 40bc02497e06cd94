// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrStatusConflict is returned when a guarded status update matched no row,
	// meaning the entity moved out of the expected state concurrently.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// Create persists a new restaurant.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID retrieves a restaurant by its unique ID, including soft-deleted rows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindByOwner retrieves all restaurants registered by the given owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)

	// ListByStatus retrieves all non-deleted restaurants in the given status.
	ListByStatus(ctx context.Context, status entity.RestaurantStatus) ([]*entity.Restaurant, error)

	// UpdateStatus transitions a restaurant between two statuses as a single
	// atomic row update ("set status=to where id=? and status=from").
	// Returns ErrStatusConflict when the restaurant is no longer in the from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RestaurantStatus) error

	// SoftDelete stamps the deleted_at timestamp; rows are never hard-deleted in steady state.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Restore clears the deleted_at timestamp.
	Restore(ctx context.Context, id uuid.UUID) error
}
