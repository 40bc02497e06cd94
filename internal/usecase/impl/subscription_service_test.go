package impl

import (
	"context"
	"testing"
	"time"

	"mesa/config"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceMocks struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	restaurantRepo   *mockRepo.MockRestaurantRepository
	auditRepo        *mockRepo.MockAuditLogRepository
	txManager        *mockRepo.MockTransactionManager
}

func newSubscriptionServiceForTest(t *testing.T) (*subscriptionService, *subscriptionServiceMocks) {
	mocks := &subscriptionServiceMocks{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		restaurantRepo:   mockRepo.NewMockRestaurantRepository(t),
		auditRepo:        mockRepo.NewMockAuditLogRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
	}
	recorder, publisher := newTestRecorder(t)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil).
		Maybe()

	cfg := &config.Config{
		Subscription: &config.SubscriptionConfig{MonthlyFeeCents: 3000},
	}

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mocks.subscriptionRepo,
		RestaurantRepo:   mocks.restaurantRepo,
		AuditRepo:        mocks.auditRepo,
		TxManager:        mocks.txManager,
		Recorder:         recorder,
		Config:           cfg,
	})

	return service.(*subscriptionService), mocks
}

func newTxFactory(t *testing.T, mocks *subscriptionServiceMocks) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(mocks.subscriptionRepo).Maybe()
	factory.EXPECT().NewRestaurantRepository().Return(mocks.restaurantRepo).Maybe()
	factory.EXPECT().NewAuditLogRepository().Return(mocks.auditRepo).Maybe()

	return factory
}

func TestSubscriptionService_Request_CreatesPendingSubscription(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusPending}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(nil, repository.ErrSubscriptionNotFound)

	mocks.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	subscription, err := service.Request(ctx, actor, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusPending, subscription.Status)
	assert.Equal(t, restaurantID, subscription.RestaurantID)
	assert.Equal(t, int64(3000), subscription.MonthlyFeeCents)
	assert.Nil(t, subscription.StartDate)
	assert.Nil(t, subscription.EndDate)
}

func TestSubscriptionService_Request_RejectsDuplicateWhileValid(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}
	end := time.Now().AddDate(0, 0, 10)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusActive,
			EndDate:      &end,
		}, nil)

	_, err := service.Request(ctx, actor, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateActiveSubscription)
}

func TestSubscriptionService_Request_RejectsDuplicateWhilePending(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusPending}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusPending,
		}, nil)

	_, err := service.Request(ctx, actor, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateActiveSubscription)
}

func TestSubscriptionService_Request_AllowsRenewalAfterExpiry(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}
	end := time.Now().Add(-time.Hour)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusSuspended}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusExpired,
			EndDate:      &end,
		}, nil)

	mocks.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	subscription, err := service.Request(ctx, actor, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusPending, subscription.Status)
}

func TestSubscriptionService_Request_ForbiddenForStranger(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	_, err := service.Request(ctx, actor, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubscriptionService_Activate_RequiresAdmin(t *testing.T) {
	service, _ := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.Activate(ctx, actor, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubscriptionService_Activate_AlreadyActive(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	subscriptionID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{ID: subscriptionID, Status: entity.SubscriptionStatusActive}, nil)

	_, err := service.Activate(ctx, actor, subscriptionID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyActive)
}

func TestSubscriptionService_Activate_RejectsCancelled(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	subscriptionID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{ID: subscriptionID, Status: entity.SubscriptionStatusCancelled}, nil)

	_, err := service.Activate(ctx, actor, subscriptionID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestSubscriptionService_Activate_CascadesRestaurantActivation(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	subscriptionID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{
			ID:           subscriptionID,
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusPending,
		}, nil)

	factory := newTxFactory(t, mocks)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mocks.subscriptionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusPending}, nil)

	mocks.restaurantRepo.EXPECT().
		UpdateStatus(ctx, restaurantID, entity.RestaurantStatusPending, entity.RestaurantStatusActive).
		Return(nil)

	var entries []*entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, entry *entity.AuditLogEntry) {
			entries = append(entries, entry)
		}).
		Return(nil)

	activated, err := service.Activate(ctx, actor, subscriptionID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, activated.Status)
	require.NotNil(t, activated.StartDate)
	require.NotNil(t, activated.EndDate)
	assert.Equal(t, activated.StartDate.AddDate(0, 1, 0), *activated.EndDate)

	// One entry for the subscription, one for the restaurant cascade,
	// both under the same correlation id.
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditActionSubscriptionActivated, entries[0].Action)
	assert.Equal(t, entity.AuditActionRestaurantActivated, entries[1].Action)
	assert.Equal(t, entries[0].CorrelationID, entries[1].CorrelationID)
	assert.Contains(t, entries[1].Metadata, "subscription_id")
}

func TestSubscriptionService_Activate_SkipsCascadeWhenRestaurantActive(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	subscriptionID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{
			ID:           subscriptionID,
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusPending,
		}, nil)

	factory := newTxFactory(t, mocks)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mocks.subscriptionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	var entries []*entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, entry *entity.AuditLogEntry) {
			entries = append(entries, entry)
		}).
		Return(nil)

	_, err := service.Activate(ctx, actor, subscriptionID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionSubscriptionActivated, entries[0].Action)
}

func TestSubscriptionService_Cancel_GuardedTransition(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	subscriptionID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}
	end := time.Now().AddDate(0, 0, 15)

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{
			ID:           subscriptionID,
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusActive,
			EndDate:      &end,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, subscriptionID, entity.SubscriptionStatusActive, entity.SubscriptionStatusCancelled).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	err := service.Cancel(ctx, actor, subscriptionID)
	require.NoError(t, err)
}

func TestSubscriptionService_Cancel_RejectsExpired(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	subscriptionID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}

	mocks.subscriptionRepo.EXPECT().
		FindByID(ctx, subscriptionID).
		Return(&entity.Subscription{
			ID:           subscriptionID,
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusExpired,
		}, nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusSuspended}, nil)

	err := service.Cancel(ctx, actor, subscriptionID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestSubscriptionService_GetCurrent_ComputesValidity(t *testing.T) {
	service, mocks := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	actor := entity.Actor{ID: ownerID, Roles: entity.Roles{entity.RoleOwner}}
	end := time.Now().Add(48*time.Hour + time.Minute)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID, Status: entity.RestaurantStatusActive}, nil)

	mocks.subscriptionRepo.EXPECT().
		FindCurrentByRestaurant(ctx, restaurantID).
		Return(&entity.Subscription{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Status:       entity.SubscriptionStatusActive,
			EndDate:      &end,
		}, nil)

	view, err := service.GetCurrent(ctx, actor, restaurantID)
	require.NoError(t, err)
	assert.True(t, view.Valid)
	assert.Equal(t, 2, view.DaysRemaining)
}
