package impl

import (
	"context"
	"strings"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo      repository.ProductRepository
	restaurantRepo   repository.RestaurantRepository
	subscriptionRepo repository.SubscriptionRepository
	auditRepo        repository.AuditLogRepository
	recorder         *AuditRecorder
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo      repository.ProductRepository
	RestaurantRepo   repository.RestaurantRepository
	SubscriptionRepo repository.SubscriptionRepository
	AuditRepo        repository.AuditLogRepository
	Recorder         *AuditRecorder
}

// NewProductService creates a new product service instance.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:      params.ProductRepo,
		restaurantRepo:   params.RestaurantRepo,
		subscriptionRepo: params.SubscriptionRepo,
		auditRepo:        params.AuditRepo,
		recorder:         params.Recorder,
	}
}

// Create adds a product to a restaurant's menu.
func (s *productService) Create(ctx context.Context, actor entity.Actor, input usecase.CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name must not be blank")
	}
	if input.PriceCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrQuantityInvariant
	}

	restaurant, err := s.findRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	now := time.Now()
	status := entity.ProductStatusActive
	if input.Quantity == 0 {
		status = entity.ProductStatusOutOfStock
	}

	product := &entity.Product{
		ID:           uuid.New(),
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		PriceCents:   input.PriceCents,
		Quantity:     input.Quantity,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionProductCreated,
		EntityType:    entity.EntityTypeProduct,
		EntityID:      product.ID,
		NewState:      productSnapshot(product),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateQuantity sets the stock level of a product.
func (s *productService) UpdateQuantity(ctx context.Context, actor entity.Actor, productID uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrQuantityInvariant
	}

	product, err := s.findOwnedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	updated := product.WithQuantity(quantity, time.Now())
	if err := s.productRepo.Update(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "failed to update product quantity")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionProductUpdated,
		EntityType:    entity.EntityTypeProduct,
		EntityID:      product.ID,
		PreviousState: productSnapshot(product),
		NewState:      productSnapshot(&updated),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetStatus moves a product between ACTIVE and INACTIVE.
// OUT_OF_STOCK is derived from quantity and cannot be set directly.
func (s *productService) SetStatus(ctx context.Context, actor entity.Actor, productID uuid.UUID, status entity.ProductStatus) (*entity.Product, error) {
	if status != entity.ProductStatusActive && status != entity.ProductStatusInactive {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product status must be ACTIVE or INACTIVE")
	}

	product, err := s.findOwnedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	// Reapplying the quantity keeps the zero-stock rule: activating an
	// empty product lands on OUT_OF_STOCK, not ACTIVE.
	updated := product.WithStatus(status, now).WithQuantity(product.Quantity, now)
	if err := s.productRepo.Update(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "failed to update product status")
	}

	if err := s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionProductUpdated,
		EntityType:    entity.EntityTypeProduct,
		EntityID:      product.ID,
		PreviousState: productSnapshot(product),
		NewState:      productSnapshot(&updated),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete soft-deletes a product.
func (s *productService) Delete(ctx context.Context, actor entity.Actor, productID uuid.UUID) error {
	product, err := s.findOwnedProduct(ctx, actor, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.SoftDelete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	deleted := product.WithDeleted(time.Now())

	return s.recorder.Record(ctx, s.auditRepo, &entity.AuditLogEntry{
		Action:        entity.AuditActionProductDeleted,
		EntityType:    entity.EntityTypeProduct,
		EntityID:      product.ID,
		PreviousState: productSnapshot(product),
		NewState:      productSnapshot(&deleted),
		CorrelationID: deliverycontext.GetCorrelationID(ctx),
		ActorID:       actor.ID,
	})
}

// ListOrderable retrieves the products a customer can order from a restaurant.
func (s *productService) ListOrderable(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Product, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	visible, err := isFullyVisible(ctx, s.subscriptionRepo, restaurant, time.Now())
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domainerrors.ErrNotFound
	}

	products, err := s.productRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	orderable := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.IsOrderable() {
			orderable = append(orderable, product)
		}
	}

	return orderable, nil
}

// ListOwned retrieves every product of a restaurant for its owner.
func (s *productService) ListOwned(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.Product, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	products, err := s.productRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *productService) findRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
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

// findOwnedProduct loads a product and verifies the actor owns its restaurant.
func (s *productService) findOwnedProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	restaurant, err := s.findRestaurant(ctx, product.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsOwnerOf(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}
