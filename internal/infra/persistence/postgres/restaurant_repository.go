// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// Create persists a new restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindByID retrieves a restaurant by its unique ID, including soft-deleted rows
// so callers can distinguish "deleted" from "never existed" and support restore.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByOwner retrieves all restaurants registered by the given owner (excluding soft-deleted).
func (repo *restaurantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by owner")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// ListByStatus retrieves all non-deleted restaurants in the given status.
func (repo *restaurantRepository) ListByStatus(ctx context.Context, status entity.RestaurantStatus) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by status")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// UpdateStatus transitions a restaurant between two statuses as a single atomic row update.
func (repo *restaurantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RestaurantStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// SoftDelete stamps the deleted_at timestamp on a restaurant.
func (repo *restaurantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RestaurantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// Restore clears the deleted_at timestamp on a soft-deleted restaurant.
func (repo *restaurantRepository) Restore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("deleted_at", nil)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to restore restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Restaurant{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Status:    entity.RestaurantStatus(data.Status),
		DeletedAt: deletedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	restaurantM := &model.RestaurantModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt != nil {
		restaurantM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return restaurantM
}
