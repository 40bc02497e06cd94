package impl

import (
	"context"
	"fmt"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	restaurantRepo   repository.RestaurantRepository
	subscriptionRepo repository.SubscriptionRepository
	auditRepo        repository.AuditLogRepository
	recorder         *AuditRecorder
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo        repository.OrderRepository
	ProductRepo      repository.ProductRepository
	RestaurantRepo   repository.RestaurantRepository
	SubscriptionRepo repository.SubscriptionRepository
	AuditRepo        repository.AuditLogRepository
	Recorder         *AuditRecorder
}

// NewOrderService creates a new order service instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        params.OrderRepo,
		productRepo:      params.ProductRepo,
		restaurantRepo:   params.RestaurantRepo,
		subscriptionRepo: params.SubscriptionRepo,
		auditRepo:        params.AuditRepo,
		recorder:         params.Recorder,
	}
}

// scopedIdempotencyKey namespaces the client-supplied key by actor, so two
// customers reusing the same key string never collide.
func scopedIdempotencyKey(actor entity.Actor, key string) string {
	return actor.ID.String() + ":" + key
}

// Create places a new PENDING order against a fully visible restaurant.
func (s *orderService) Create(ctx context.Context, actor entity.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.IdempotencyKey == "" {
		return nil, domainerrors.ErrIdempotencyKeyRequired
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}

	// Repository-level idempotency: a repeated key returns the original
	// order, regardless of what the response cache remembers.
	key := scopedIdempotencyKey(actor, input.IdempotencyKey)
	existing, err := s.orderRepo.FindByIdempotencyKey(ctx, key)
	if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check idempotency key")
	}
	if existing != nil {
		return existing, nil
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	now := time.Now()
	visible, err := isFullyVisible(ctx, s.subscriptionRepo, restaurant, now)
	if err != nil {
		return nil, err
	}
	if !visible || !restaurant.CanReceiveOrders() {
		return nil, domainerrors.ErrRestaurantNotOrderable
	}

	items, err := s.buildOrderItems(ctx, input)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(actor.ID, input.RestaurantID, key, items, now)
	if err := s.orderRepo.Create(ctx, &order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			// Lost a creation race on the same key: the winner's row is the answer.
			return s.orderRepo.FindByIdempotencyKey(ctx, key)
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionOrderCreated,
		EntityType:    entity.EntityTypeOrder,
		EntityID:      order.ID,
		NewState:      orderSnapshot(&order),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return &order, nil
}

// buildOrderItems resolves the requested products into immutable line-item
// snapshots, validating quantities and orderability.
func (s *orderService) buildOrderItems(ctx context.Context, input usecase.CreateOrderInput) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, itemInput := range input.Items {
		if itemInput.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, itemInput.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrNotFound.WithDetails("product " + itemInput.ProductID.String() + " not found")
			}

			return nil, errors.Wrap(err, "failed to find product")
		}
		if product.RestaurantID != input.RestaurantID {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product " + product.ID.String() + " belongs to another restaurant")
		}
		if !product.IsOrderable() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product " + product.ID.String() + " is not orderable")
		}

		items = append(items, entity.OrderItem{
			ProductID:      product.ID,
			Name:           product.Name,
			Quantity:       itemInput.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	return items, nil
}

// Get retrieves one order for its customer, the restaurant owner, or an admin.
func (s *orderService) Get(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, restaurant, err := s.findOrderWithRestaurant(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(actor, order, restaurant) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListByCustomer retrieves the acting customer's orders, newest first.
func (s *orderService) ListByCustomer(ctx context.Context, actor entity.Actor) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return orders, nil
}

// ListByRestaurant retrieves a restaurant's orders for its owner, newest first.
func (s *orderService) ListByRestaurant(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Order, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	orders, err := s.orderRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by restaurant")
	}

	return orders, nil
}

// Accept moves PENDING → ACCEPTED.
func (s *orderService) Accept(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.Accept(now)
	})
}

// Reject moves PENDING → REJECTED with a mandatory reason.
func (s *orderService) Reject(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.Reject(reason, now)
	})
}

// Confirm moves ACCEPTED → CONFIRMED.
func (s *orderService) Confirm(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.Confirm(now)
	})
}

// StartPreparing moves CONFIRMED → PREPARING.
func (s *orderService) StartPreparing(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.StartPreparing(now)
	})
}

// MarkReady moves PREPARING → READY.
func (s *orderService) MarkReady(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.MarkReady(now)
	})
}

// MarkDelivered moves READY → DELIVERED.
func (s *orderService) MarkDelivered(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isRestaurantSide, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.MarkDelivered(now)
	})
}

// Cancel moves any pre-READY state → CANCELLED with an optional reason.
func (s *orderService) Cancel(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isParticipant, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.Cancel(reason, now)
	})
}

// Report moves any post-acceptance state → REPORTED with a mandatory reason.
func (s *orderService) Report(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return s.transition(ctx, actor, orderID, s.isParticipant, func(order entity.Order, now time.Time) (entity.Order, error) {
		return order.Report(reason, now)
	})
}

// transition loads the order, authorizes the actor, applies the state-machine
// action, persists the result, and writes the audit entry.
func (s *orderService) transition(
	ctx context.Context,
	actor entity.Actor,
	orderID uuid.UUID,
	authorize func(entity.Actor, *entity.Order, *entity.Restaurant) bool,
	apply func(entity.Order, time.Time) (entity.Order, error),
) (*entity.Order, error) {
	order, restaurant, err := s.findOrderWithRestaurant(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !authorize(actor, order, restaurant) {
		return nil, domainerrors.ErrForbidden
	}

	updated, err := apply(*order, time.Now())
	if err != nil {
		return nil, err
	}
	if updated.Status == order.Status {
		// Retried terminal action short-circuited in the entity: nothing
		// changed, so nothing to persist or audit.
		return order, nil
	}

	if err := s.orderRepo.Update(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionOrderTransitioned,
		EntityType:    entity.EntityTypeOrder,
		EntityID:      order.ID,
		PreviousState: orderSnapshot(order),
		NewState:      orderSnapshot(&updated),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
		Metadata: map[string]any{
			"from": order.Status.String(),
			"to":   updated.Status.String(),
		},
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *orderService) findOrderWithRestaurant(ctx context.Context, orderID uuid.UUID) (*entity.Order, *entity.Restaurant, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil, domainerrors.ErrNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find order")
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, order.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, nil, errors.Wrap(err, fmt.Sprintf("restaurant %s missing for order %s", order.RestaurantID, order.ID))
		}

		return nil, nil, errors.Wrap(err, "failed to find restaurant")
	}

	return order, restaurant, nil
}

// isRestaurantSide authorizes kitchen-side transitions: the restaurant owner or an admin.
func (s *orderService) isRestaurantSide(actor entity.Actor, _ *entity.Order, restaurant *entity.Restaurant) bool {
	return actor.IsAdmin() || actor.IsOwnerOf(restaurant.OwnerID)
}

// isParticipant authorizes either side of the order, or an admin.
func (s *orderService) isParticipant(actor entity.Actor, order *entity.Order, restaurant *entity.Restaurant) bool {
	return actor.IsAdmin() || actor.ID == order.CustomerID || actor.IsOwnerOf(restaurant.OwnerID)
}
