// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantView is the customer-facing projection of a restaurant,
// carrying the derived visibility fields alongside the entity data.
type RestaurantView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	VisibilityScore int       `json:"visibility_score"`
	DaysRemaining   int       `json:"days_remaining"` // Whole days left on the current subscription.
}

// RestaurantUsecase defines the interface for restaurant management use cases.
type RestaurantUsecase interface {
	// Register creates a new restaurant in PENDING status for the acting owner.
	Register(ctx context.Context, actor entity.Actor, name string) (*entity.Restaurant, error)

	// GetVisible retrieves one restaurant through the customer visibility
	// predicate. A restaurant that is not fully visible reads as not found.
	GetVisible(ctx context.Context, id uuid.UUID) (*RestaurantView, error)

	// ListVisible retrieves every restaurant currently visible to customers.
	ListVisible(ctx context.Context) ([]*RestaurantView, error)

	// ListOwned retrieves the acting owner's restaurants, visible or not.
	ListOwned(ctx context.Context, actor entity.Actor) ([]*entity.Restaurant, error)

	// Suspend moves a restaurant to SUSPENDED. Admin only.
	Suspend(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// Delete soft-deletes a restaurant. Owner or admin.
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// Restore clears the soft-delete flag on a restaurant. Owner or admin.
	Restore(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// GenerateStorefrontQR renders the PNG QR code for a restaurant's public menu.
	GenerateStorefrontQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
