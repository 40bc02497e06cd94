package postgres

import (
	"context"
	"encoding/json"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order. The unique index on idempotency_key turns a
// concurrent duplicate insert into ErrDuplicateOrder instead of a second row.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to encode order items")
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByIdempotencyKey retrieves the order created under the given key.
func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderDomain(&orderM)
}

// Update persists the mutable fields of an existing order.
// Line items and the total are immutable after creation and never rewritten.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":              order.Status.String(),
			"rejection_reason":    order.RejectionReason,
			"cancellation_reason": order.CancellationReason,
			"report_reason":       order.ReportReason,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ListByCustomer retrieves all orders placed by a customer, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return toOrderDomainSlice(orderModels)
}

// ListByRestaurant retrieves all orders received by a restaurant, newest first.
func (repo *orderRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by restaurant")
	}

	return toOrderDomainSlice(orderModels)
}

// --- Mapper Functions ---

func toOrderDomainSlice(orderModels []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.OrderItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode order items")
		}
	}

	return &entity.Order{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		RestaurantID:       data.RestaurantID,
		IdempotencyKey:     data.IdempotencyKey,
		Status:             entity.OrderStatus(data.Status),
		Items:              items,
		TotalCents:         data.TotalCents,
		RejectionReason:    data.RejectionReason,
		CancellationReason: data.CancellationReason,
		ReportReason:       data.ReportReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		RestaurantID:       data.RestaurantID,
		IdempotencyKey:     data.IdempotencyKey,
		Status:             data.Status.String(),
		Items:              datatypes.JSON(items),
		TotalCents:         data.TotalCents,
		RejectionReason:    data.RejectionReason,
		CancellationReason: data.CancellationReason,
		ReportReason:       data.ReportReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}
