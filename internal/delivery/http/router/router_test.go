package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mesa/config"
	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/router/handler"
	"mesa/internal/delivery/http/validator"
	"mesa/internal/domain/entity"
	"mesa/internal/infra/idempotency"
	mockSvc "mesa/internal/mocks/service"
	mockUC "mesa/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	orderUC  *mockUC.MockOrderUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newRouterForTest(t *testing.T) (*echo.Echo, *routerMocks) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	mocks := &routerMocks{
		orderUC:  mockUC.NewMockOrderUsecase(t),
		tokenSvc: mockSvc.NewMockTokenService(t),
	}

	r := NewRouter(RouterParams{
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{
			RestaurantUC: mockUC.NewMockRestaurantUsecase(t),
			Logger:       logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: mockUC.NewMockProductUsecase(t),
			Logger:    logger,
		}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{
			SubscriptionUC: mockUC.NewMockSubscriptionUsecase(t),
			Logger:         logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: mocks.orderUC,
			Logger:  logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			RestaurantUC: mockUC.NewMockRestaurantUsecase(t),
			SweepUC:      mockUC.NewMockSweepUsecase(t),
			AuditUC:      mockUC.NewMockAuditUsecase(t),
			Logger:       logger,
		}),
		AuthMiddleware:        middleware.NewAuthMiddleware(mocks.tokenSvc, cfg),
		IdempotencyMiddleware: middleware.NewIdempotencyMiddleware(idempotency.NewMemoryStore(), cfg, logger),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, mocks
}

func expectOwnerToken(mocks *routerMocks, ownerID uuid.UUID) {
	mocks.tokenSvc.EXPECT().
		ValidateToken("owner-token", "").
		Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"sub": ownerID.String(), "roles": []any{"owner"}},
		}, nil)
}

func ownerRequest(e *echo.Echo, method, target, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer owner-token")
	if key != "" {
		req.Header.Set(deliverycontext.HeaderXIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RetriedOrderTransitionReplaysCachedResponse(t *testing.T) {
	e, mocks := newRouterForTest(t)

	ownerID := uuid.New()
	orderID := uuid.New()
	expectOwnerToken(mocks, ownerID)

	mocks.orderUC.EXPECT().
		Accept(mock.Anything, mock.AnythingOfType("entity.Actor"), orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusAccepted}, nil).
		Once()

	target := "/owner/orders/" + orderID.String() + "/accept"

	first := ownerRequest(e, http.MethodPost, target, "retry-1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get(middleware.HeaderXIdempotentReplay))

	// The retry must replay the cached response; the Once() expectation
	// above proves the usecase did not run a second time.
	second := ownerRequest(e, http.MethodPost, target, "retry-1")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.HeaderXIdempotentReplay))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRouter_MutatingRoutesRequireIdempotencyKey(t *testing.T) {
	e, mocks := newRouterForTest(t)

	ownerID := uuid.New()
	orderID := uuid.New()
	expectOwnerToken(mocks, ownerID)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/owner/restaurants"},
		{http.MethodPost, "/owner/products"},
		{http.MethodPost, "/owner/subscriptions"},
		{http.MethodPost, "/owner/orders/" + orderID.String() + "/accept"},
		{http.MethodPost, "/owner/orders/" + orderID.String() + "/reject"},
		{http.MethodDelete, "/owner/restaurants/" + orderID.String()},
	}
	for _, route := range routes {
		rec := ownerRequest(e, route.method, route.target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", route.method, route.target)
	}
}
