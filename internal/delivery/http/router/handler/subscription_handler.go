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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// RequestSubscriptionRequest represents the request body for requesting a subscription
type RequestSubscriptionRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// Request handles a subscription request by a restaurant owner
func (h *SubscriptionHandler) Request(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req RequestSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.Request(c.Request().Context(), actor, req.RestaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription requested successfully")
}

// Activate handles admin payment validation and subscription activation
func (h *SubscriptionHandler) Activate(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	subscription, err := h.subscriptionUC.Activate(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription activated successfully")
}

// Cancel handles subscription cancellation
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.subscriptionUC.Cancel(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Subscription cancelled successfully")
}

// GetCurrent handles retrieving a restaurant's current subscription
func (h *SubscriptionHandler) GetCurrent(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	view, err := h.subscriptionUC.GetCurrent(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Current subscription retrieved successfully")
}

// ListHistory handles retrieving a restaurant's subscription renewal history
func (h *SubscriptionHandler) ListHistory(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	subscriptions, err := h.subscriptionUC.ListHistory(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscription history retrieved successfully")
}
