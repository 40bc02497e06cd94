package impl

import (
	"context"
	"testing"
	"time"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"
	mockSvc "mesa/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type restaurantServiceMocks struct {
	restaurantRepo   *mockRepo.MockRestaurantRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	auditRepo        *mockRepo.MockAuditLogRepository
	qrcodeService    *mockSvc.MockQRCodeService
}

func newRestaurantServiceForTest(t *testing.T) (*restaurantService, *restaurantServiceMocks) {
	mocks := &restaurantServiceMocks{
		restaurantRepo:   mockRepo.NewMockRestaurantRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		auditRepo:        mockRepo.NewMockAuditLogRepository(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
	}
	recorder, publisher := newTestRecorder(t)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil).
		Maybe()

	service := NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo:   mocks.restaurantRepo,
		SubscriptionRepo: mocks.subscriptionRepo,
		AuditRepo:        mocks.auditRepo,
		Recorder:         recorder,
		QRCodeService:    mocks.qrcodeService,
	})

	return service.(*restaurantService), mocks
}

func TestRestaurantService_Register_StartsPending(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Restaurant")).
		Return(nil)

	var entry *entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, e *entity.AuditLogEntry) { entry = e }).
		Return(nil)

	restaurant, err := service.Register(ctx, actor, "Night Market Noodles")
	require.NoError(t, err)
	assert.Equal(t, entity.RestaurantStatusPending, restaurant.Status)
	assert.Equal(t, ownerID, restaurant.OwnerID)
	assert.False(t, restaurant.IsVisible())

	require.NotNil(t, entry)
	assert.Equal(t, entity.AuditActionRestaurantCreated, entry.Action)
	assert.Equal(t, restaurant.ID, entry.EntityID)
}

func TestRestaurantService_Register_RejectsBlankName(t *testing.T) {
	service, _ := newRestaurantServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.Register(ctx, actor, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRestaurantService_GetVisible_HidesWithoutValidSubscription(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(nil, repository.ErrSubscriptionNotFound)

	// Indistinguishable from a restaurant that does not exist.
	_, err := service.GetVisible(ctx, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_GetVisible_ReturnsViewWhenFullyVisible(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	end := time.Now().Add(24*time.Hour + time.Minute)
	subscription := &entity.Subscription{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.SubscriptionStatusActive,
		EndDate:      &end,
	}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Name: "Dumpling House", Status: entity.RestaurantStatusActive}, nil)

	// Once for the visibility predicate, once for the view's days remaining.
	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(subscription, nil).
		Times(2)

	view, err := service.GetVisible(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Dumpling House", view.Name)
	assert.Equal(t, 100, view.VisibilityScore)
	assert.Equal(t, 1, view.DaysRemaining)
}

func TestRestaurantService_ListVisible_FiltersLapsedSubscriptions(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	visibleID := uuid.New()
	lapsedID := uuid.New()
	validEnd := time.Now().AddDate(0, 0, 12)
	lapsedEnd := time.Now().Add(-time.Minute)

	mocks.restaurantRepo.EXPECT().
		ListByStatus(ctx, entity.RestaurantStatusActive).
		Return([]*entity.Restaurant{
			{ID: visibleID, Name: "Visible", Status: entity.RestaurantStatusActive},
			{ID: lapsedID, Name: "Lapsed", Status: entity.RestaurantStatusActive},
		}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, visibleID).
		Return(&entity.Subscription{
			Status:  entity.SubscriptionStatusActive,
			EndDate: &validEnd,
		}, nil).
		Times(2)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, lapsedID).
		Return(&entity.Subscription{
			Status:  entity.SubscriptionStatusActive,
			EndDate: &lapsedEnd,
		}, nil)

	views, err := service.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Visible", views[0].Name)
}

func TestRestaurantService_Suspend_RequiresAdmin(t *testing.T) {
	service, _ := newRestaurantServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	err := service.Suspend(ctx, actor, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_Suspend_IdempotentWhenAlreadySuspended(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusSuspended}, nil)

	err := service.Suspend(ctx, actor, restaurantID)
	require.NoError(t, err)
}

func TestRestaurantService_Suspend_GuardedUpdate(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.restaurantRepo.EXPECT().
		UpdateStatus(ctx, restaurantID, entity.RestaurantStatusActive, entity.RestaurantStatusSuspended).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	err := service.Suspend(ctx, actor, restaurantID)
	require.NoError(t, err)
}

func TestRestaurantService_Delete_ForbiddenForStranger(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	err := service.Delete(ctx, actor, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_Restore_NoopWhenNotDeleted(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	err := service.Restore(ctx, actor, restaurantID)
	require.NoError(t, err)
}

func TestRestaurantService_Restore_ClearsSoftDelete(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}
	deletedAt := time.Now().Add(-time.Hour)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{
			ID:        restaurantID,
			OwnerID:   ownerID,
			Status:    entity.RestaurantStatusActive,
			DeletedAt: &deletedAt,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		Restore(ctx, restaurantID).
		Return(nil)

	var entry *entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, e *entity.AuditLogEntry) { entry = e }).
		Return(nil)

	err := service.Restore(ctx, actor, restaurantID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entity.AuditActionRestaurantRestored, entry.Action)
}

func TestRestaurantService_GenerateStorefrontQR(t *testing.T) {
	service, mocks := newRestaurantServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	expected := []byte("png-bytes")

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.qrcodeService.EXPECT().
		GenerateStorefrontQR(restaurantID).
		Return(expected, nil)

	png, err := service.GenerateStorefrontQR(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, expected, png)
}
