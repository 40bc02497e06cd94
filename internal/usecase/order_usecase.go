package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line on a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries the fields needed to place an order.
type CreateOrderInput struct {
	RestaurantID   uuid.UUID
	IdempotencyKey string
	Items          []OrderItemInput
}

// OrderUsecase defines the interface for order lifecycle use cases.
// Each transition method enforces the state machine and the caller's
// relationship to the order before persisting.
type OrderUsecase interface {
	// Create places a new PENDING order against a fully visible restaurant.
	// A repeated idempotency key returns the original order unchanged.
	Create(ctx context.Context, actor entity.Actor, input CreateOrderInput) (*entity.Order, error)

	// Get retrieves one order for its customer, the restaurant owner, or an admin.
	Get(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// ListByCustomer retrieves the acting customer's orders, newest first.
	ListByCustomer(ctx context.Context, actor entity.Actor) ([]*entity.Order, error)

	// ListByRestaurant retrieves a restaurant's orders for its owner, newest first.
	ListByRestaurant(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Order, error)

	// Accept moves PENDING → ACCEPTED. Restaurant owner only.
	Accept(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// Reject moves PENDING → REJECTED with a mandatory reason. Restaurant owner only.
	Reject(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)

	// Confirm moves ACCEPTED → CONFIRMED. Restaurant owner only.
	Confirm(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// StartPreparing moves CONFIRMED → PREPARING. Restaurant owner only.
	StartPreparing(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// MarkReady moves PREPARING → READY. Restaurant owner only.
	MarkReady(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// MarkDelivered moves READY → DELIVERED. Restaurant owner only.
	MarkDelivered(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// Cancel moves any pre-READY state → CANCELLED with an optional reason.
	// Customer, restaurant owner, or admin.
	Cancel(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)

	// Report moves any post-acceptance state → REPORTED with a mandatory
	// reason. Customer, restaurant owner, or admin.
	Report(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)
}
