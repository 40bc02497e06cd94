package postgres

import (
	"context"
	"time"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription row.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindCurrentByRestaurant retrieves the most recent subscription for a restaurant.
func (repo *subscriptionRepository) FindCurrentByRestaurant(ctx context.Context, restaurantID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// ListByRestaurant retrieves the full renewal history for a restaurant, newest first.
func (repo *subscriptionRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions by restaurant")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindOverdue retrieves every ACTIVE subscription whose end date is at or
// before the given instant. Ordered by end date so the oldest debt is
// processed first.
func (repo *subscriptionRepository) FindOverdue(ctx context.Context, now time.Time) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND end_date <= ?", entity.SubscriptionStatusActive.String(), now).
		Order("end_date ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Update persists the mutable fields of an existing subscription.
func (repo *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscription.ID).
		Updates(map[string]any{
			"status":     subscription.Status.String(),
			"start_date": subscription.StartDate,
			"end_date":   subscription.EndDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// UpdateStatus transitions a subscription between two statuses as a single atomic row update.
func (repo *subscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.SubscriptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:              data.ID,
		RestaurantID:    data.RestaurantID,
		Status:          entity.SubscriptionStatus(data.Status),
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		MonthlyFeeCents: data.MonthlyFeeCents,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:              data.ID,
		RestaurantID:    data.RestaurantID,
		Status:          data.Status.String(),
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		MonthlyFeeCents: data.MonthlyFeeCents,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
