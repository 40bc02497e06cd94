// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID, excluding soft-deleted rows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByRestaurant retrieves all non-deleted products of a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Product, error)

	// Update persists the mutable fields of an existing product (quantity, status, price, name).
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete stamps the deleted_at timestamp on a product.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
