package impl

import (
	"context"
	"strings"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type restaurantService struct {
	restaurantRepo   repository.RestaurantRepository
	subscriptionRepo repository.SubscriptionRepository
	auditRepo        repository.AuditLogRepository
	recorder         *AuditRecorder
	qrcodeService    service.QRCodeService
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo   repository.RestaurantRepository
	SubscriptionRepo repository.SubscriptionRepository
	AuditRepo        repository.AuditLogRepository
	Recorder         *AuditRecorder
	QRCodeService    service.QRCodeService
}

// NewRestaurantService creates a new restaurant service instance.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo:   params.RestaurantRepo,
		subscriptionRepo: params.SubscriptionRepo,
		auditRepo:        params.AuditRepo,
		recorder:         params.Recorder,
		qrcodeService:    params.QRCodeService,
	}
}

// Register creates a new restaurant in PENDING status for the acting owner.
func (s *restaurantService) Register(ctx context.Context, actor entity.Actor, name string) (*entity.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("restaurant name must not be blank")
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New(),
		OwnerID:   actor.ID,
		Name:      name,
		Status:    entity.RestaurantStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionRestaurantCreated,
		EntityType:    entity.EntityTypeRestaurant,
		EntityID:      restaurant.ID,
		NewState:      restaurantSnapshot(restaurant),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// GetVisible retrieves one restaurant through the customer visibility predicate.
func (s *restaurantService) GetVisible(ctx context.Context, id uuid.UUID) (*usecase.RestaurantView, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
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
	if !visible {
		// An invisible restaurant is indistinguishable from a missing one.
		return nil, domainerrors.ErrNotFound
	}

	return s.buildView(ctx, restaurant, now)
}

// ListVisible retrieves every restaurant currently visible to customers.
func (s *restaurantService) ListVisible(ctx context.Context) ([]*usecase.RestaurantView, error) {
	restaurants, err := s.restaurantRepo.ListByStatus(ctx, entity.RestaurantStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active restaurants")
	}

	now := time.Now()
	views := make([]*usecase.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		visible, err := isFullyVisible(ctx, s.subscriptionRepo, restaurant, now)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}

		view, err := s.buildView(ctx, restaurant, now)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// ListOwned retrieves the acting owner's restaurants, visible or not.
func (s *restaurantService) ListOwned(ctx context.Context, actor entity.Actor) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned restaurants")
	}

	return restaurants, nil
}

// Suspend moves a restaurant to SUSPENDED. Admin only.
func (s *restaurantService) Suspend(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if restaurant.Status == entity.RestaurantStatusSuspended {
		return nil
	}

	if err := s.restaurantRepo.UpdateStatus(ctx, id, restaurant.Status, entity.RestaurantStatusSuspended); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return domainerrors.ErrInvalidTransition.WithDetails("restaurant status changed concurrently")
		}

		return errors.Wrap(err, "failed to suspend restaurant")
	}

	suspended := restaurant.WithStatus(entity.RestaurantStatusSuspended, time.Now())

	return s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionRestaurantSuspended,
		EntityType:    entity.EntityTypeRestaurant,
		EntityID:      restaurant.ID,
		PreviousState: restaurantSnapshot(restaurant),
		NewState:      restaurantSnapshot(&suspended),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	})
}

// Delete soft-deletes a restaurant. Owner or admin.
func (s *restaurantService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return domainerrors.ErrForbidden
	}

	if err := s.restaurantRepo.SoftDelete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete restaurant")
	}

	deleted := restaurant.WithDeleted(time.Now())

	return s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionRestaurantDeleted,
		EntityType:    entity.EntityTypeRestaurant,
		EntityID:      restaurant.ID,
		PreviousState: restaurantSnapshot(restaurant),
		NewState:      restaurantSnapshot(&deleted),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	})
}

// Restore clears the soft-delete flag on a restaurant. Owner or admin.
func (s *restaurantService) Restore(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find restaurant")
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return domainerrors.ErrForbidden
	}
	if !restaurant.IsDeleted() {
		return nil
	}

	if err := s.restaurantRepo.Restore(ctx, id); err != nil {
		return errors.Wrap(err, "failed to restore restaurant")
	}

	restored := restaurant.WithRestored(time.Now())

	return s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionRestaurantRestored,
		EntityType:    entity.EntityTypeRestaurant,
		EntityID:      restaurant.ID,
		PreviousState: restaurantSnapshot(restaurant),
		NewState:      restaurantSnapshot(&restored),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	})
}

// GenerateStorefrontQR renders the PNG QR code for a restaurant's public menu.
func (s *restaurantService) GenerateStorefrontQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateStorefrontQR(restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return png, nil
}

// findRestaurant loads a live (non-deleted) restaurant or maps the absence
// to the transport-facing not-found error.
func (s *restaurantService) findRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
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

func (s *restaurantService) buildView(ctx context.Context, restaurant *entity.Restaurant, now time.Time) (*usecase.RestaurantView, error) {
	daysRemaining := 0
	subscription, err := s.subscriptionRepo.FindCurrentByRestaurant(ctx, restaurant.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find current subscription")
	}
	if subscription != nil {
		daysRemaining = subscription.DaysRemaining(now)
	}

	return &usecase.RestaurantView{
		ID:              restaurant.ID,
		Name:            restaurant.Name,
		Status:          restaurant.Status.String(),
		VisibilityScore: restaurant.VisibilityScore(),
		DaysRemaining:   daysRemaining,
	}, nil
}
