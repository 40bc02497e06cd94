package impl

import (
	"context"
	"testing"
	"time"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orderRepo        *mockRepo.MockOrderRepository
	productRepo      *mockRepo.MockProductRepository
	restaurantRepo   *mockRepo.MockRestaurantRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	auditRepo        *mockRepo.MockAuditLogRepository
}

func newOrderServiceForTest(t *testing.T) (*orderService, *orderServiceMocks) {
	mocks := &orderServiceMocks{
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		productRepo:      mockRepo.NewMockProductRepository(t),
		restaurantRepo:   mockRepo.NewMockRestaurantRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		auditRepo:        mockRepo.NewMockAuditLogRepository(t),
	}
	recorder, publisher := newTestRecorder(t)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil).
		Maybe()

	service := NewOrderService(OrderServiceParams{
		OrderRepo:        mocks.orderRepo,
		ProductRepo:      mocks.productRepo,
		RestaurantRepo:   mocks.restaurantRepo,
		SubscriptionRepo: mocks.subscriptionRepo,
		AuditRepo:        mocks.auditRepo,
		Recorder:         recorder,
	})

	return service.(*orderService), mocks
}

// expectOrderableRestaurant wires an ACTIVE restaurant with a valid subscription.
func expectOrderableRestaurant(ctx context.Context, mocks *orderServiceMocks, restaurantID, ownerID uuid.UUID) {
	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	end := time.Now().AddDate(0, 0, 20)
	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusActive,
			EndDate:      &end,
		}, nil)
}

func TestOrderService_Create_RequiresIdempotencyKey(t *testing.T) {
	service, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}

	_, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: uuid.New(),
		Items:        []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyRequired)
}

func TestOrderService_Create_RequiresItems(t *testing.T) {
	service, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}

	_, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   uuid.New(),
		IdempotencyKey: "key-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Create_Success(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}
	scopedKey := customerID.String() + ":key-1"

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, scopedKey).
		Return(nil, repository.ErrOrderNotFound)

	expectOrderableRestaurant(ctx, mocks, restaurantID, uuid.New())

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:           productID,
			RestaurantID: restaurantID,
			Name:         "Beef Noodles",
			PriceCents:   1800,
			Quantity:     5,
			Status:       entity.ProductStatusActive,
		}, nil)

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	order, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   restaurantID,
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, scopedKey, order.IdempotencyKey)
	assert.Equal(t, int64(3600), order.TotalCents)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Beef Noodles", order.Items[0].Name)
	assert.Equal(t, int64(1800), order.Items[0].UnitPriceCents)
}

func TestOrderService_Create_ReplaysExistingOrderForSameKey(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}
	scopedKey := customerID.String() + ":key-1"

	existing := &entity.Order{
		ID:             uuid.New(),
		CustomerID:     customerID,
		IdempotencyKey: scopedKey,
		Status:         entity.OrderStatusAccepted,
	}

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, scopedKey).
		Return(existing, nil)

	order, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   uuid.New(),
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.NoError(t, err)
	// The original order wins, whatever state it has reached since.
	assert.Equal(t, existing, order)
}

func TestOrderService_Create_LosesCreationRace(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}
	scopedKey := customerID.String() + ":key-1"

	winner := &entity.Order{ID: uuid.New(), CustomerID: customerID, IdempotencyKey: scopedKey}

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, scopedKey).
		Return(nil, repository.ErrOrderNotFound).
		Once()

	expectOrderableRestaurant(ctx, mocks, restaurantID, uuid.New())

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:           productID,
			RestaurantID: restaurantID,
			PriceCents:   900,
			Quantity:     3,
			Status:       entity.ProductStatusActive,
		}, nil)

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrder)

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, scopedKey).
		Return(winner, nil).
		Once()

	order, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   restaurantID,
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, winner, order)
}

func TestOrderService_Create_RejectsSuspendedRestaurant(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, customerID.String()+":key-1").
		Return(nil, repository.ErrOrderNotFound)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusSuspended}, nil)

	_, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   restaurantID,
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotOrderable)
}

func TestOrderService_Create_RejectsExpiredSubscription(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}
	end := time.Now().Add(-time.Hour)

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, customerID.String()+":key-1").
		Return(nil, repository.ErrOrderNotFound)

	// The restaurant row still says ACTIVE, but the subscription lapsed;
	// the recomputed predicate hides it immediately.
	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusActive,
			EndDate:      &end,
		}, nil)

	_, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   restaurantID,
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotOrderable)
}

func TestOrderService_Create_RejectsForeignProduct(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, customerID.String()+":key-1").
		Return(nil, repository.ErrOrderNotFound)

	expectOrderableRestaurant(ctx, mocks, restaurantID, uuid.New())

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:           productID,
			RestaurantID: uuid.New(),
			PriceCents:   500,
			Quantity:     3,
			Status:       entity.ProductStatusActive,
		}, nil)

	_, err := service.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID:   restaurantID,
		IdempotencyKey: "key-1",
		Items:          []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Accept_ByOwner(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			CustomerID:   uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.OrderStatusPending,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	var entry *entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, e *entity.AuditLogEntry) { entry = e }).
		Return(nil)

	accepted, err := service.Accept(ctx, actor, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, accepted.Status)

	require.NotNil(t, entry)
	assert.Equal(t, entity.AuditActionOrderTransitioned, entry.Action)
	assert.Equal(t, "PENDING", entry.Metadata["from"])
	assert.Equal(t, "ACCEPTED", entry.Metadata["to"])
}

func TestOrderService_Accept_ForbiddenForCustomer(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Status:       entity.OrderStatusPending,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	_, err := service.Accept(ctx, actor, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Reject_RequiresReasonBeforePersisting(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			CustomerID:   uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.OrderStatusPending,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	// No Update and no audit write may happen for a refused transition.
	_, err := service.Reject(ctx, actor, orderID, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingReason)
}

func TestOrderService_Cancel_ByCustomer(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Status:       entity.OrderStatusConfirmed,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	mocks.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	cancelled, err := service.Cancel(ctx, actor, orderID, "changed plans")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, "changed plans", cancelled.CancellationReason)
}

func TestOrderService_Cancel_RetryOnCancelledOrderIsANoop(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: customerID, Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:                 orderID,
			CustomerID:         customerID,
			RestaurantID:       restaurantID,
			Status:             entity.OrderStatusCancelled,
			CancellationReason: "changed plans",
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	// No Update and no audit entry: the retry changes nothing.
	cancelled, err := service.Cancel(ctx, actor, orderID, "changed plans")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, "changed plans", cancelled.CancellationReason)
}

func TestOrderService_Cancel_ForbiddenForStranger(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			CustomerID:   uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.OrderStatusPending,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	_, err := service.Cancel(ctx, actor, orderID, "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	service, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.Get(ctx, actor, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
