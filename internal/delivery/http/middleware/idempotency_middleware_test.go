package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mesa/config"
	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/infra/idempotency"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGuardForTest() (*IdempotencyMiddleware, *echo.Echo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	middleware := NewIdempotencyMiddleware(idempotency.NewMemoryStore(), &config.Config{}, logger)

	return middleware, echo.New()
}

func invokeGuard(e *echo.Echo, handler echo.HandlerFunc, actor *entity.Actor, key string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	if key != "" {
		req.Header.Set(deliverycontext.HeaderXIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set(actorContextKey, *actor)
	}

	return rec, handler(c)
}

func TestIdempotencyGuard_RequiresKey(t *testing.T) {
	middleware, e := newGuardForTest()
	handler := middleware.Guard(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	actor := entity.Actor{ID: uuid.New()}
	_, err := invokeGuard(e, handler, &actor, "")
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyRequired)
}

func TestIdempotencyGuard_RequiresActor(t *testing.T) {
	middleware, e := newGuardForTest()
	handler := middleware.Guard(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	_, err := invokeGuard(e, handler, nil, "key-1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIdempotencyGuard_ReplaysCachedResponse(t *testing.T) {
	middleware, e := newGuardForTest()

	calls := 0
	handler := middleware.Guard(func(c echo.Context) error {
		calls++

		return c.JSON(http.StatusCreated, map[string]string{"order_id": "abc"})
	})

	actor := entity.Actor{ID: uuid.New()}

	first, err := invokeGuard(e, handler, &actor, "key-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(HeaderXIdempotentReplay))
	assert.Equal(t, 1, calls)

	second, err := invokeGuard(e, handler, &actor, "key-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(HeaderXIdempotentReplay))
	assert.Equal(t, first.Body.String(), second.Body.String())
	// The handler must not run again for a replay.
	assert.Equal(t, 1, calls)
}

func TestIdempotencyGuard_KeysAreScopedPerActor(t *testing.T) {
	middleware, e := newGuardForTest()

	calls := 0
	handler := middleware.Guard(func(c echo.Context) error {
		calls++

		return c.JSON(http.StatusCreated, map[string]int{"call": calls})
	})

	alice := entity.Actor{ID: uuid.New()}
	bob := entity.Actor{ID: uuid.New()}

	_, err := invokeGuard(e, handler, &alice, "key-1")
	require.NoError(t, err)

	second, err := invokeGuard(e, handler, &bob, "key-1")
	require.NoError(t, err)
	assert.Empty(t, second.Header().Get(HeaderXIdempotentReplay))
	assert.Equal(t, 2, calls)
}

func TestIdempotencyGuard_DoesNotCacheFailures(t *testing.T) {
	middleware, e := newGuardForTest()

	calls := 0
	handler := middleware.Guard(func(c echo.Context) error {
		calls++

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
	})

	actor := entity.Actor{ID: uuid.New()}

	_, err := invokeGuard(e, handler, &actor, "key-1")
	require.NoError(t, err)

	second, err := invokeGuard(e, handler, &actor, "key-1")
	require.NoError(t, err)
	assert.Empty(t, second.Header().Get(HeaderXIdempotentReplay))
	assert.Equal(t, 2, calls)
}

func TestIdempotencyGuard_BrokenCacheDoesNotBlockWrites(t *testing.T) {
	store := mockRepo.NewMockIdempotencyStore(t)
	store.EXPECT().
		Check(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, errors.New("redis down"))
	store.EXPECT().
		Store(mock.Anything, mock.AnythingOfType("*entity.IdempotencyRecord"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("redis down"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	middleware := NewIdempotencyMiddleware(store, &config.Config{}, logger)
	e := echo.New()

	calls := 0
	handler := middleware.Guard(func(c echo.Context) error {
		calls++

		return c.JSON(http.StatusCreated, map[string]string{"order_id": "abc"})
	})

	actor := entity.Actor{ID: uuid.New()}
	rec, err := invokeGuard(e, handler, &actor, "key-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, calls)
}
