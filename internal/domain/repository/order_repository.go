// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when the idempotency key unique constraint is violated.
	ErrDuplicateOrder = errors.New("order already exists for idempotency key")
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order. The idempotency key carries a unique
	// constraint; a duplicate insert returns ErrDuplicateOrder.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey retrieves the order created under the given key,
	// the repository-level half of the idempotency defense in depth.
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error)

	// Update persists the mutable fields of an existing order (status, reasons),
	// keyed by id; line items are immutable after creation.
	Update(ctx context.Context, order *entity.Order) error

	// ListByCustomer retrieves all orders placed by a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListByRestaurant retrieves all orders received by a restaurant, newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error)
}
