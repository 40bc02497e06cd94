package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/entity"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	PriceCents   int64     `json:"price_cents" validate:"gte=0"`
	Quantity     int       `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityRequest represents the request body for a stock update
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetStatusRequest represents the request body for a product status change
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles product creation by a restaurant owner
func (h *ProductHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), actor, usecase.CreateProductInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateQuantity handles stock level updates
func (h *ProductHandler) UpdateQuantity(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}

	product, err := h.productUC.UpdateQuantity(c.Request().Context(), actor, id, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product quantity updated successfully")
}

// SetStatus handles moving a product between ACTIVE and INACTIVE
func (h *ProductHandler) SetStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.SetStatus(c.Request().Context(), actor, id, entity.ProductStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product status updated successfully")
}

// Delete handles product soft deletion
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListOrderable handles the customer-facing product listing of a restaurant
func (h *ProductHandler) ListOrderable(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	products, err := h.productUC.ListOrderable(c.Request().Context(), restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// ListOwned handles the owner-facing product listing of a restaurant
func (h *ProductHandler) ListOwned(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	products, err := h.productUC.ListOwned(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
