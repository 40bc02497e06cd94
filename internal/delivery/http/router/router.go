// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/router/handler"
	"mesa/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers and route-level middleware, injected by Fx.
type RouterParams struct {
	fx.In

	RestaurantHandler   *handler.RestaurantHandler
	ProductHandler      *handler.ProductHandler
	SubscriptionHandler *handler.SubscriptionHandler
	OrderHandler        *handler.OrderHandler
	AdminHandler        *handler.AdminHandler

	AuthMiddleware        *middleware.AuthMiddleware
	IdempotencyMiddleware *middleware.IdempotencyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler   *handler.RestaurantHandler
	productHandler      *handler.ProductHandler
	subscriptionHandler *handler.SubscriptionHandler
	orderHandler        *handler.OrderHandler
	adminHandler        *handler.AdminHandler

	authMiddleware        *middleware.AuthMiddleware
	idempotencyMiddleware *middleware.IdempotencyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler:     params.RestaurantHandler,
		productHandler:        params.ProductHandler,
		subscriptionHandler:   params.SubscriptionHandler,
		orderHandler:          params.OrderHandler,
		adminHandler:          params.AdminHandler,
		authMiddleware:        params.AuthMiddleware,
		idempotencyMiddleware: params.IdempotencyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every state-changing route sits behind the idempotency guard, so a
// network-retried request replays the original response instead of
// re-running the mutation.
func (r *router) RegisterRoutes(e *echo.Echo) {
	guard := r.idempotencyMiddleware.Guard

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public customer-facing reads, filtered by the visibility predicate
	e.GET("/restaurants", r.restaurantHandler.ListVisible)
	e.GET("/restaurants/:id", r.restaurantHandler.GetVisible)
	e.GET("/restaurants/:id/products", r.productHandler.ListOrderable)
	e.GET("/restaurants/:id/qr", r.restaurantHandler.StorefrontQR)

	// Owner routes that require authentication and the "owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleOwner))
	{
		ownerGroup.POST("/restaurants", r.restaurantHandler.Register, guard)
		ownerGroup.GET("/restaurants", r.restaurantHandler.ListOwned)
		ownerGroup.DELETE("/restaurants/:id", r.restaurantHandler.Delete, guard)
		ownerGroup.POST("/restaurants/:id/restore", r.restaurantHandler.Restore, guard)
		ownerGroup.GET("/restaurants/:id/orders", r.orderHandler.ListByRestaurant)
		ownerGroup.GET("/restaurants/:id/products", r.productHandler.ListOwned)

		ownerGroup.POST("/products", r.productHandler.Create, guard)
		ownerGroup.PUT("/products/:id/quantity", r.productHandler.UpdateQuantity, guard)
		ownerGroup.PUT("/products/:id/status", r.productHandler.SetStatus, guard)
		ownerGroup.DELETE("/products/:id", r.productHandler.Delete, guard)

		ownerGroup.POST("/subscriptions", r.subscriptionHandler.Request, guard)
		ownerGroup.POST("/subscriptions/:id/cancel", r.subscriptionHandler.Cancel, guard)
		ownerGroup.GET("/restaurants/:id/subscription", r.subscriptionHandler.GetCurrent)
		ownerGroup.GET("/restaurants/:id/subscriptions", r.subscriptionHandler.ListHistory)

		// Kitchen-side order transitions
		ownerGroup.POST("/orders/:id/accept", r.orderHandler.Accept, guard)
		ownerGroup.POST("/orders/:id/reject", r.orderHandler.Reject, guard)
		ownerGroup.POST("/orders/:id/confirm", r.orderHandler.Confirm, guard)
		ownerGroup.POST("/orders/:id/prepare", r.orderHandler.StartPreparing, guard)
		ownerGroup.POST("/orders/:id/ready", r.orderHandler.MarkReady, guard)
		ownerGroup.POST("/orders/:id/deliver", r.orderHandler.MarkDelivered, guard)
	}

	// Customer routes that require authentication
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.POST("/orders", r.orderHandler.Create, guard)
		customerGroup.GET("/orders", r.orderHandler.ListMine)
		customerGroup.GET("/orders/:id", r.orderHandler.Get)
		customerGroup.POST("/orders/:id/cancel", r.orderHandler.Cancel, guard)
		customerGroup.POST("/orders/:id/report", r.orderHandler.Report, guard)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/restaurants/:id/suspend", r.adminHandler.SuspendRestaurant, guard)
		adminGroup.POST("/subscriptions/:id/activate", r.subscriptionHandler.Activate, guard)
		// The sweep is idempotent by construction; re-triggering it is safe
		// without a key.
		adminGroup.POST("/sweep", r.adminHandler.TriggerSweep)
		adminGroup.GET("/audit/entity/:type/:id", r.adminHandler.ListAuditByEntity)
		adminGroup.GET("/audit/correlation/:id", r.adminHandler.ListAuditByCorrelation)
	}
}
