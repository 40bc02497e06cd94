package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mesa/internal/domain/constants"
	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepMocks struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	restaurantRepo   *mockRepo.MockRestaurantRepository
	auditRepo        *mockRepo.MockAuditLogRepository
	txManager        *mockRepo.MockTransactionManager
}

func newSweepForTest(t *testing.T) (*expirationSweep, *sweepMocks) {
	mocks := &sweepMocks{
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

	sweep := NewExpirationSweep(ExpirationSweepParams{
		SubscriptionRepo: mocks.subscriptionRepo,
		TxManager:        mocks.txManager,
		Recorder:         recorder,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return sweep.(*expirationSweep), mocks
}

func expectSweepTx(t *testing.T, mocks *sweepMocks) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(mocks.subscriptionRepo).Maybe()
	factory.EXPECT().NewRestaurantRepository().Return(mocks.restaurantRepo).Maybe()
	factory.EXPECT().NewAuditLogRepository().Return(mocks.auditRepo).Maybe()

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func overdueSubscription(restaurantID uuid.UUID) *entity.Subscription {
	end := time.Now().Add(-time.Hour)
	start := end.AddDate(0, -1, 0)

	return &entity.Subscription{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.SubscriptionStatusActive,
		StartDate:    &start,
		EndDate:      &end,
	}
}

func TestExpirationSweep_Run_NothingOverdue(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	summary, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0, summary.Expired)
	assert.Equal(t, 0, summary.Suspended)
	assert.Empty(t, summary.Errors)
}

func TestExpirationSweep_Run_SecondSweepSelectsNothing(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	subscription := overdueSubscription(restaurantID)

	// The first run expires the only overdue subscription, removing it from
	// the ACTIVE set. Re-running the job re-evaluates the same predicate and
	// must select the empty set.
	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{subscription}, nil).
		Once()
	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil).
		Once()

	expectSweepTx(t, mocks)

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, subscription.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(nil).
		Once()

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil).
		Once()

	mocks.restaurantRepo.EXPECT().
		UpdateStatus(ctx, restaurantID, entity.RestaurantStatusActive, entity.RestaurantStatusSuspended).
		Return(nil).
		Once()

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil).
		Times(2)

	first, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Expired)
	assert.Equal(t, 1, first.Suspended)

	second, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 0, second.Expired)
	assert.Equal(t, 0, second.Suspended)
	assert.Empty(t, second.Errors)
}

func TestExpirationSweep_Run_ExpiresAndSuspends(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	subscription := overdueSubscription(restaurantID)

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{subscription}, nil)

	expectSweepTx(t, mocks)

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, subscription.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New(), Status: entity.RestaurantStatusActive}, nil)

	mocks.restaurantRepo.EXPECT().
		UpdateStatus(ctx, restaurantID, entity.RestaurantStatusActive, entity.RestaurantStatusSuspended).
		Return(nil)

	var entries []*entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, entry *entity.AuditLogEntry) {
			entries = append(entries, entry)
		}).
		Return(nil)

	summary, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Suspended)
	assert.Empty(t, summary.Errors)

	// Expiry and suspension entries share the job id as correlation and
	// carry the system actor.
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditActionSubscriptionExpired, entries[0].Action)
	assert.Equal(t, entity.AuditActionRestaurantSuspended, entries[1].Action)
	for _, entry := range entries {
		assert.Equal(t, summary.JobID, entry.CorrelationID)
		assert.Equal(t, entity.SystemActorID, entry.ActorID)
	}
	assert.Equal(t, true, entries[1].Metadata["automatic_suspension"])
	assert.Equal(t, constants.SweepTriggerSchedule, entries[1].Metadata["trigger"])
}

func TestExpirationSweep_Run_ConcurrentExpiryIsBenign(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()
	subscription := overdueSubscription(uuid.New())

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{subscription}, nil)

	expectSweepTx(t, mocks)

	// An overlapping run already expired the row; the guarded update
	// matches nothing and the item completes without error.
	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, subscription.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(repository.ErrStatusConflict)

	summary, err := sweep.Run(ctx, constants.SweepTriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Expired)
	assert.Equal(t, 0, summary.Suspended)
	assert.Empty(t, summary.Errors)
}

func TestExpirationSweep_Run_SkipsSuspensionWhenNotActive(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	subscription := overdueSubscription(restaurantID)

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{subscription}, nil)

	expectSweepTx(t, mocks)

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, subscription.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusSuspended}, nil)

	var entries []*entity.AuditLogEntry
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, entry *entity.AuditLogEntry) {
			entries = append(entries, entry)
		}).
		Return(nil)

	summary, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 0, summary.Suspended)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionSubscriptionExpired, entries[0].Action)
}

func TestExpirationSweep_Run_ItemFailureDoesNotAbortBatch(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	failing := overdueSubscription(uuid.New())
	succeeding := overdueSubscription(restaurantID)

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{failing, succeeding}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(mocks.subscriptionRepo).Maybe()
	factory.EXPECT().NewRestaurantRepository().Return(mocks.restaurantRepo).Maybe()
	factory.EXPECT().NewAuditLogRepository().Return(mocks.auditRepo).Maybe()

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Times(2)

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, failing.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(errors.New("connection reset"))

	mocks.subscriptionRepo.EXPECT().
		UpdateStatus(ctx, succeeding.ID, entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired).
		Return(nil)

	mocks.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.RestaurantStatusActive}, nil)

	mocks.restaurantRepo.EXPECT().
		UpdateStatus(ctx, restaurantID, entity.RestaurantStatusActive, entity.RestaurantStatusSuspended).
		Return(nil)

	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	summary, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Suspended)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, failing.ID, summary.Errors[0].SubscriptionID)
	assert.Contains(t, summary.Errors[0].Reason, "connection reset")
}

func TestExpirationSweep_Run_FindOverdueFailureAbortsRun(t *testing.T) {
	sweep, mocks := newSweepForTest(t)

	ctx := context.Background()

	mocks.subscriptionRepo.EXPECT().
		FindOverdue(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("db unavailable"))

	_, err := sweep.Run(ctx, constants.SweepTriggerSchedule)
	assert.Error(t, err)
}
