package impl

import (
	"context"
	"log/slog"
	"time"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type expirationSweep struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	recorder         *AuditRecorder
	logger           *slog.Logger
}

// ExpirationSweepParams holds dependencies for the sweep, injected by Fx.
type ExpirationSweepParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Recorder         *AuditRecorder
	Logger           *slog.Logger
}

// NewExpirationSweep creates the subscription expiration sweep use case.
func NewExpirationSweep(params ExpirationSweepParams) usecase.SweepUsecase {
	return &expirationSweep{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		recorder:         params.Recorder,
		logger:           params.Logger,
	}
}

// Run expires every overdue subscription and suspends the owning restaurants.
// The selection predicate (ACTIVE && end_date <= now) shrinks as rows are
// expired, so a second run over an unchanged clock processes nothing.
// Item-level failures are collected and never abort the batch.
func (s *expirationSweep) Run(ctx context.Context, trigger string) (*usecase.SweepSummary, error) {
	jobID := uuid.New()
	now := time.Now()

	summary := &usecase.SweepSummary{
		JobID:   jobID,
		Trigger: trigger,
	}

	overdue, err := s.subscriptionRepo.FindOverdue(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find overdue subscriptions")
	}

	s.logger.Info("subscription sweep started",
		slog.String("jobID", jobID.String()),
		slog.String("trigger", trigger),
		slog.Int("overdue", len(overdue)),
	)

	for _, subscription := range overdue {
		summary.Processed++

		expired, suspended, err := s.processItem(ctx, subscription, jobID, trigger, now)
		if err != nil {
			summary.Errors = append(summary.Errors, usecase.SweepItemError{
				SubscriptionID: subscription.ID,
				Reason:         err.Error(),
			})
			s.logger.Error("sweep item failed",
				slog.String("jobID", jobID.String()),
				slog.String("subscriptionID", subscription.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		if expired {
			summary.Expired++
		}
		if suspended {
			summary.Suspended++
		}
	}

	s.logger.Info("subscription sweep finished",
		slog.String("jobID", jobID.String()),
		slog.Int("processed", summary.Processed),
		slog.Int("expired", summary.Expired),
		slog.Int("suspended", summary.Suspended),
		slog.Int("errors", len(summary.Errors)),
	)

	return summary, nil
}

// processItem expires one subscription and suspends its restaurant inside a
// single transaction, then publishes the audit events after commit.
func (s *expirationSweep) processItem(ctx context.Context, subscription *entity.Subscription, jobID uuid.UUID, trigger string, now time.Time) (expired, suspended bool, err error) {
	metadata := map[string]any{
		"job_id":          jobID.String(),
		"trigger":         trigger,
		"subscription_id": subscription.ID.String(),
	}

	var written []*entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		subscriptionRepo := factory.NewSubscriptionRepository()
		restaurantRepo := factory.NewRestaurantRepository()
		auditRepo := factory.NewAuditLogRepository()

		// Status-guarded update: an overlapping run that already expired
		// this row is a benign no-op, not an error.
		updateErr := subscriptionRepo.UpdateStatus(ctx, subscription.ID,
			entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired)
		if updateErr != nil {
			if errors.Is(updateErr, repository.ErrStatusConflict) {
				return nil
			}

			return errors.Wrap(updateErr, "failed to expire subscription")
		}
		expired = true

		expiredSub := subscription.WithStatus(entity.SubscriptionStatusExpired, now)
		subscriptionEntry := &entity.AuditLogEntry{
			Action:        entity.AuditActionSubscriptionExpired,
			EntityType:    entity.EntityTypeSubscription,
			EntityID:      subscription.ID,
			PreviousState: subscriptionSnapshot(subscription),
			NewState:      subscriptionSnapshot(&expiredSub),
			CorrelationID: jobID,
			ActorID:       entity.SystemActorID,
			Metadata:      metadata,
		}
		if writeErr := s.recorder.Write(ctx, auditRepo, subscriptionEntry); writeErr != nil {
			return writeErr
		}
		written = append(written, subscriptionEntry)

		restaurant, findErr := restaurantRepo.FindByID(ctx, subscription.RestaurantID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find restaurant for suspension cascade")
		}
		if !restaurant.IsActive() {
			// Already suspended or deactivated; the expiry alone suffices.
			return nil
		}

		suspendErr := restaurantRepo.UpdateStatus(ctx, restaurant.ID,
			entity.RestaurantStatusActive, entity.RestaurantStatusSuspended)
		if suspendErr != nil {
			if errors.Is(suspendErr, repository.ErrStatusConflict) {
				return nil
			}

			return errors.Wrap(suspendErr, "failed to suspend restaurant")
		}
		suspended = true

		suspendedRestaurant := restaurant.WithStatus(entity.RestaurantStatusSuspended, now)
		suspensionMetadata := map[string]any{
			"job_id":               jobID.String(),
			"trigger":              trigger,
			"subscription_id":      subscription.ID.String(),
			"automatic_suspension": true,
		}
		restaurantEntry := &entity.AuditLogEntry{
			Action:        entity.AuditActionRestaurantSuspended,
			EntityType:    entity.EntityTypeRestaurant,
			EntityID:      restaurant.ID,
			PreviousState: restaurantSnapshot(restaurant),
			NewState:      restaurantSnapshot(&suspendedRestaurant),
			CorrelationID: jobID,
			ActorID:       entity.SystemActorID,
			Metadata:      suspensionMetadata,
		}
		if writeErr := s.recorder.Write(ctx, auditRepo, restaurantEntry); writeErr != nil {
			return writeErr
		}
		written = append(written, restaurantEntry)

		return nil
	})
	if err != nil {
		return false, false, err
	}

	for _, entry := range written {
		s.recorder.Publish(ctx, entry)
	}

	return expired, suspended, nil
}
