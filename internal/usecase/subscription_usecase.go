package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionView augments a subscription with its derived validity fields.
type SubscriptionView struct {
	Subscription  *entity.Subscription `json:"subscription"`
	Valid         bool                 `json:"valid"`
	DaysRemaining int                  `json:"days_remaining"`
}

// SubscriptionUsecase defines the interface for subscription lifecycle use cases.
type SubscriptionUsecase interface {
	// Request creates a PENDING subscription for a restaurant. Owner only.
	// Guarded against a second subscription while one is still valid.
	Request(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) (*entity.Subscription, error)

	// Activate validates payment and activates a PENDING subscription,
	// cascading the owning restaurant to ACTIVE. Admin only.
	Activate(ctx context.Context, actor entity.Actor, subscriptionID uuid.UUID) (*entity.Subscription, error)

	// Cancel moves a subscription to CANCELLED. Owner of the restaurant or admin.
	Cancel(ctx context.Context, actor entity.Actor, subscriptionID uuid.UUID) error

	// GetCurrent retrieves the restaurant's newest subscription with its
	// computed validity. Owner of the restaurant or admin.
	GetCurrent(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) (*SubscriptionView, error)

	// ListHistory retrieves the restaurant's full renewal history, newest first.
	// Owner of the restaurant or admin.
	ListHistory(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Subscription, error)
}
