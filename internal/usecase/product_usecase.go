package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields needed to create a product.
type CreateProductInput struct {
	RestaurantID uuid.UUID
	Name         string
	PriceCents   int64
	Quantity     int
}

// ProductUsecase defines the interface for product management use cases.
type ProductUsecase interface {
	// Create adds a product to a restaurant's menu. Owner only.
	Create(ctx context.Context, actor entity.Actor, input CreateProductInput) (*entity.Product, error)

	// UpdateQuantity sets the stock level of a product. Owner only.
	// Negative quantities are rejected; zero moves the product to OUT_OF_STOCK.
	UpdateQuantity(ctx context.Context, actor entity.Actor, productID uuid.UUID, quantity int) (*entity.Product, error)

	// SetStatus moves a product between ACTIVE and INACTIVE. Owner only.
	SetStatus(ctx context.Context, actor entity.Actor, productID uuid.UUID, status entity.ProductStatus) (*entity.Product, error)

	// Delete soft-deletes a product. Owner only.
	Delete(ctx context.Context, actor entity.Actor, productID uuid.UUID) error

	// ListOrderable retrieves the products a customer can order from a
	// restaurant, filtered through the full visibility predicate.
	ListOrderable(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Product, error)

	// ListOwned retrieves every product of a restaurant for its owner,
	// regardless of status.
	ListOwned(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Product, error)
}
