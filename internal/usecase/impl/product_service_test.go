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

type productServiceMocks struct {
	productRepo      *mockRepo.MockProductRepository
	restaurantRepo   *mockRepo.MockRestaurantRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	auditRepo        *mockRepo.MockAuditLogRepository
}

func newProductServiceForTest(t *testing.T) (*productService, *productServiceMocks) {
	mocks := &productServiceMocks{
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

	service := NewProductService(ProductServiceParams{
		ProductRepo:      mocks.productRepo,
		RestaurantRepo:   mocks.restaurantRepo,
		SubscriptionRepo: mocks.subscriptionRepo,
		AuditRepo:        mocks.auditRepo,
		Recorder:         recorder,
	})

	return service.(*productService), mocks
}

func TestProductService_Create_ZeroQuantityStartsOutOfStock(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	product, err := service.Create(ctx, actor, usecase.CreateProductInput{
		RestaurantID: restaurantID,
		Name:         "Scallion Pancake",
		PriceCents:   600,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, product.Status)
	assert.False(t, product.IsOrderable())
}

func TestProductService_Create_RejectsNegativeQuantity(t *testing.T) {
	service, _ := newProductServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.Create(ctx, actor, usecase.CreateProductInput{
		RestaurantID: uuid.New(),
		Name:         "Dumplings",
		PriceCents:   900,
		Quantity:     -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrQuantityInvariant)
}

func TestProductService_UpdateQuantity_RejectsNegative(t *testing.T) {
	service, _ := newProductServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.UpdateQuantity(ctx, actor, uuid.New(), -5)
	assert.ErrorIs(t, err, domainerrors.ErrQuantityInvariant)
}

func TestProductService_UpdateQuantity_DepletionMarksOutOfStock(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:           productID,
			RestaurantID: restaurantID,
			Quantity:     4,
			Status:       entity.ProductStatusActive,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	updated, err := service.UpdateQuantity(ctx, actor, productID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, entity.ProductStatusOutOfStock, updated.Status)
}

func TestProductService_SetStatus_RejectsOutOfStock(t *testing.T) {
	service, _ := newProductServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.SetStatus(ctx, actor, uuid.New(), entity.ProductStatusOutOfStock)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_SetStatus_ActivatingEmptyProductLandsOutOfStock(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:           productID,
			RestaurantID: restaurantID,
			Quantity:     0,
			Status:       entity.ProductStatusInactive,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	updated, err := service.SetStatus(ctx, actor, productID, entity.ProductStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, updated.Status)
}

func TestProductService_ListOrderable_HiddenRestaurantLooksMissing(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusSuspended}, nil)

	_, err := service.ListOrderable(ctx, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductService_ListOrderable_FiltersUnorderable(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	end := time.Now().AddDate(0, 0, 5)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			Status:  entity.SubscriptionStatusActive,
			EndDate: &end,
		}, nil)

	mocks.productRepo.EXPECT().
		ListByRestaurant(ctx, restaurantID).
		Return([]*entity.Product{
			{ID: uuid.New(), Name: "In stock", Quantity: 3, Status: entity.ProductStatusActive},
			{ID: uuid.New(), Name: "Empty", Quantity: 0, Status: entity.ProductStatusOutOfStock},
			{ID: uuid.New(), Name: "Hidden", Quantity: 9, Status: entity.ProductStatusInactive},
		}, nil)

	products, err := service.ListOrderable(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "In stock", products[0].Name)
}

func TestProductService_Delete_ForbiddenForStranger(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	productID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, RestaurantID: restaurantID, Status: entity.ProductStatusActive}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	err := service.Delete(ctx, actor, productID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_NotFoundMapping(t *testing.T) {
	service, mocks := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	mocks.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.UpdateQuantity(ctx, actor, productID, 3)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
