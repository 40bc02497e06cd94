package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/constants"
	"mesa/internal/domain/entity"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	SweepUC      usecase.SweepUsecase
	AuditUC      usecase.AuditUsecase
	Logger       *slog.Logger
}

// AdminHandler holds dependencies for platform administration handlers
type AdminHandler struct {
	restaurantUC usecase.RestaurantUsecase
	sweepUC      usecase.SweepUsecase
	auditUC      usecase.AuditUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		restaurantUC: params.RestaurantUC,
		sweepUC:      params.SweepUC,
		auditUC:      params.AuditUC,
		logger:       params.Logger,
	}
}

// SuspendRestaurant handles the administrative restaurant suspension
func (h *AdminHandler) SuspendRestaurant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	if err := h.restaurantUC.Suspend(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant suspended successfully")
}

// TriggerSweep handles the manual expiration sweep trigger
func (h *AdminHandler) TriggerSweep(c echo.Context) error {
	summary, err := h.sweepUC.Run(c.Request().Context(), constants.SweepTriggerManual)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "Sweep completed successfully")
}

// ListAuditByEntity handles the audit trail query for one entity
func (h *AdminHandler) ListAuditByEntity(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity ID")
	}

	entityType := entity.EntityType(c.Param("type"))

	entries, err := h.auditUC.ListByEntity(c.Request().Context(), actor, entityType, entityID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entries, "Audit entries retrieved successfully")
}

// ListAuditByCorrelation handles the audit trail query for one request or job run
func (h *AdminHandler) ListAuditByCorrelation(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	correlationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid correlation ID")
	}

	entries, err := h.auditUC.ListByCorrelationID(c.Request().Context(), actor, correlationID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entries, "Audit entries retrieved successfully")
}
