// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// RegisterRestaurantRequest represents the request body for registering a restaurant
type RegisterRestaurantRequest struct {
	Name string `json:"name" validate:"required"`
}

// Register handles restaurant registration by an owner
func (h *RestaurantHandler) Register(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req RegisterRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.restaurantUC.Register(c.Request().Context(), actor, req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant registered successfully")
}

// GetVisible handles the customer-facing restaurant detail read
func (h *RestaurantHandler) GetVisible(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	view, err := h.restaurantUC.GetVisible(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Restaurant retrieved successfully")
}

// ListVisible handles the customer-facing restaurant listing
func (h *RestaurantHandler) ListVisible(c echo.Context) error {
	views, err := h.restaurantUC.ListVisible(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, views, "Restaurants retrieved successfully")
}

// ListOwned handles the owner's restaurant listing
func (h *RestaurantHandler) ListOwned(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	restaurants, err := h.restaurantUC.ListOwned(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// Delete handles restaurant soft deletion
func (h *RestaurantHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	if err := h.restaurantUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

// Restore handles restaurant restoration after soft deletion
func (h *RestaurantHandler) Restore(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	if err := h.restaurantUC.Restore(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant restored successfully")
}

// StorefrontQR serves the restaurant's storefront QR code as a PNG image
func (h *RestaurantHandler) StorefrontQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	png, err := h.restaurantUC.GenerateStorefrontQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
