package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/entity"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line in a create-order request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	RestaurantID uuid.UUID          `json:"restaurant_id" validate:"required"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReasonRequest carries the reason for reject, cancel, and report actions
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// Create handles order placement by a customer
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUC.Create(c.Request().Context(), actor, usecase.CreateOrderInput{
		RestaurantID:   req.RestaurantID,
		IdempotencyKey: c.Request().Header.Get(deliverycontext.HeaderXIdempotencyKey),
		Items:          items,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Get handles retrieving one order
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListMine handles the customer's own order listing
func (h *OrderHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	orders, err := h.orderUC.ListByCustomer(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListByRestaurant handles the owner's order listing for one restaurant
func (h *OrderHandler) ListByRestaurant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	orders, err := h.orderUC.ListByRestaurant(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Accept handles the PENDING → ACCEPTED transition
func (h *OrderHandler) Accept(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.Accept, "Order accepted successfully")
}

// Confirm handles the ACCEPTED → CONFIRMED transition
func (h *OrderHandler) Confirm(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.Confirm, "Order confirmed successfully")
}

// StartPreparing handles the CONFIRMED → PREPARING transition
func (h *OrderHandler) StartPreparing(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.StartPreparing, "Order preparation started successfully")
}

// MarkReady handles the PREPARING → READY transition
func (h *OrderHandler) MarkReady(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.MarkReady, "Order marked ready successfully")
}

// MarkDelivered handles the READY → DELIVERED transition
func (h *OrderHandler) MarkDelivered(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.MarkDelivered, "Order marked delivered successfully")
}

// Reject handles the PENDING → REJECTED transition with a mandatory reason
func (h *OrderHandler) Reject(c echo.Context) error {
	return h.reasonTransition(c, h.orderUC.Reject, "Order rejected successfully")
}

// Cancel handles the → CANCELLED transition with an optional reason
func (h *OrderHandler) Cancel(c echo.Context) error {
	return h.reasonTransition(c, h.orderUC.Cancel, "Order cancelled successfully")
}

// Report handles the → REPORTED transition with a mandatory reason
func (h *OrderHandler) Report(c echo.Context) error {
	return h.reasonTransition(c, h.orderUC.Report, "Order reported successfully")
}

func (h *OrderHandler) parseTransition(c echo.Context) (uuid.UUID, entity.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return uuid.Nil, entity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, entity.Actor{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}

	return id, actor, nil
}

func (h *OrderHandler) simpleTransition(
	c echo.Context,
	action func(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error),
	message string,
) error {
	id, actor, err := h.parseTransition(c)
	if err != nil {
		return err
	}

	order, err := action(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, message)
}

func (h *OrderHandler) reasonTransition(
	c echo.Context,
	action func(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error),
	message string,
) error {
	id, actor, err := h.parseTransition(c)
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reason input")
	}

	order, err := action(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, message)
}
