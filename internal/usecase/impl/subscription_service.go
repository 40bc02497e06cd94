package impl

import (
	"context"
	"time"

	"mesa/config"
	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	restaurantRepo   repository.RestaurantRepository
	auditRepo        repository.AuditLogRepository
	txManager        repository.TransactionManager
	recorder         *AuditRecorder
	config           *config.Config
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	RestaurantRepo   repository.RestaurantRepository
	AuditRepo        repository.AuditLogRepository
	TxManager        repository.TransactionManager
	Recorder         *AuditRecorder
	Config           *config.Config
}

// NewSubscriptionService creates a new subscription service instance.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		restaurantRepo:   params.RestaurantRepo,
		auditRepo:        params.AuditRepo,
		txManager:        params.TxManager,
		recorder:         params.Recorder,
		config:           params.Config,
	}
}

// Request creates a PENDING subscription for a restaurant.
func (s *subscriptionService) Request(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) (*entity.Subscription, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	now := time.Now()
	current, err := s.subscriptionRepo.FindCurrentByRestaurant(ctx, restaurantID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find current subscription")
	}
	if current != nil && (current.Status == entity.SubscriptionStatusPending || current.IsValid(now)) {
		return nil, domainerrors.ErrDuplicateActiveSubscription.WithDetails(
			"subscription " + current.ID.String() + " is still " + current.Status.String(),
		)
	}

	subscription := &entity.Subscription{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		Status:          entity.SubscriptionStatusPending,
		MonthlyFeeCents: s.config.Subscription.MonthlyFeeCents,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionSubscriptionCreated,
		EntityType:    entity.EntityTypeSubscription,
		EntityID:      subscription.ID,
		NewState:      subscriptionSnapshot(subscription),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return subscription, nil
}

// Activate validates payment and activates a PENDING subscription, cascading
// the owning restaurant to ACTIVE. The subscription update, the restaurant
// update, and both audit entries commit in one transaction under one
// correlation id; events publish only after the commit.
func (s *subscriptionService) Activate(ctx context.Context, actor entity.Actor, subscriptionID uuid.UUID) (*entity.Subscription, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	subscription, err := s.findSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.Status == entity.SubscriptionStatusActive {
		return nil, domainerrors.ErrSubscriptionAlreadyActive
	}
	if subscription.Status != entity.SubscriptionStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"only a PENDING subscription can be activated; current status: " + subscription.Status.String(),
		)
	}

	now := time.Now()
	correlationID := deliverycontext.GetCorrelationID(ctx)
	activated := subscription.WithActivated(now)

	var written []*entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		subscriptionRepo := factory.NewSubscriptionRepository()
		restaurantRepo := factory.NewRestaurantRepository()
		auditRepo := factory.NewAuditLogRepository()

		if err := subscriptionRepo.Update(ctx, &activated); err != nil {
			return errors.Wrap(err, "failed to activate subscription")
		}

		subscriptionEntry := &entity.AuditLogEntry{
			Action:        entity.AuditActionSubscriptionActivated,
			EntityType:    entity.EntityTypeSubscription,
			EntityID:      subscription.ID,
			PreviousState: subscriptionSnapshot(subscription),
			NewState:      subscriptionSnapshot(&activated),
			CorrelationID: correlationID,
			ActorID:       actor.ID,
		}
		if err := s.recorder.Write(ctx, auditRepo, subscriptionEntry); err != nil {
			return err
		}
		written = append(written, subscriptionEntry)

		restaurant, err := restaurantRepo.FindByID(ctx, subscription.RestaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to find restaurant for activation cascade")
		}
		if restaurant.IsActive() {
			return nil
		}

		if err := restaurantRepo.UpdateStatus(ctx, restaurant.ID, restaurant.Status, entity.RestaurantStatusActive); err != nil {
			return errors.Wrap(err, "failed to activate restaurant")
		}

		activatedRestaurant := restaurant.WithStatus(entity.RestaurantStatusActive, now)
		restaurantEntry := &entity.AuditLogEntry{
			Action:        entity.AuditActionRestaurantActivated,
			EntityType:    entity.EntityTypeRestaurant,
			EntityID:      restaurant.ID,
			PreviousState: restaurantSnapshot(restaurant),
			NewState:      restaurantSnapshot(&activatedRestaurant),
			CorrelationID: correlationID,
			ActorID:       actor.ID,
			Metadata:      map[string]any{"subscription_id": subscription.ID.String()},
		}
		if err := s.recorder.Write(ctx, auditRepo, restaurantEntry); err != nil {
			return err
		}
		written = append(written, restaurantEntry)

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, entry := range written {
		s.recorder.Publish(ctx, entry)
	}

	return &activated, nil
}

// Cancel moves a subscription to CANCELLED.
func (s *subscriptionService) Cancel(ctx context.Context, actor entity.Actor, subscriptionID uuid.UUID) error {
	subscription, err := s.findSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}

	restaurant, err := s.findRestaurant(ctx, subscription.RestaurantID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return domainerrors.ErrForbidden
	}

	if subscription.Status != entity.SubscriptionStatusPending && subscription.Status != entity.SubscriptionStatusActive {
		return domainerrors.ErrInvalidTransition.WithDetails(
			"only a PENDING or ACTIVE subscription can be cancelled; current status: " + subscription.Status.String(),
		)
	}

	if err := s.subscriptionRepo.UpdateStatus(ctx, subscriptionID, subscription.Status, entity.SubscriptionStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return domainerrors.ErrInvalidTransition.WithDetails("subscription status changed concurrently")
		}

		return errors.Wrap(err, "failed to cancel subscription")
	}

	cancelled := subscription.WithStatus(entity.SubscriptionStatusCancelled, time.Now())

	return s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionSubscriptionCancelled,
		EntityType:    entity.EntityTypeSubscription,
		EntityID:      subscription.ID,
		PreviousState: subscriptionSnapshot(subscription),
		NewState:      subscriptionSnapshot(&cancelled),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	})
}

// GetCurrent retrieves the restaurant's newest subscription with its computed validity.
func (s *subscriptionService) GetCurrent(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) (*usecase.SubscriptionView, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	subscription, err := s.subscriptionRepo.FindCurrentByRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	now := time.Now()

	return &usecase.SubscriptionView{
		Subscription:  subscription,
		Valid:         subscription.IsValid(now),
		DaysRemaining: subscription.DaysRemaining(now),
	}, nil
}

// ListHistory retrieves the restaurant's full renewal history, newest first.
func (s *subscriptionService) ListHistory(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Subscription, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	subscriptions, err := s.subscriptionRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription history")
	}

	return subscriptions, nil
}

func (s *subscriptionService) findRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if restaurant.IsDeleted() {
		return nil, domainerrors.ErrNotFound
	}

	return restaurant, nil
}

func (s *subscriptionService) findSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return subscription, nil
}
