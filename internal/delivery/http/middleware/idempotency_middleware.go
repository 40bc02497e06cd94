package middleware

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"mesa/config"
	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HeaderXIdempotentReplay marks a response served from the idempotency cache.
const HeaderXIdempotentReplay = "X-Idempotent-Replay"

// IdempotencyMiddleware guards mutating endpoints against duplicate
// submissions. The first successful (2xx) response under a key is cached for
// the configured TTL; retries with the same key replay it verbatim without
// re-executing the handler.
type IdempotencyMiddleware struct {
	store  repository.IdempotencyStore
	logger *slog.Logger
	ttl    time.Duration
}

// NewIdempotencyMiddleware creates a new idempotency middleware.
func NewIdempotencyMiddleware(store repository.IdempotencyStore, cfg *config.Config, logger *slog.Logger) *IdempotencyMiddleware {
	ttl := entity.DefaultIdempotencyTTL
	if cfg.Idempotency != nil && cfg.Idempotency.TTL > 0 {
		ttl = cfg.Idempotency.TTL
	}

	return &IdempotencyMiddleware{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

// Guard requires an X-Idempotency-Key header and replays the cached response
// on a repeated key. Keys are scoped per actor so two clients reusing the
// same key string never observe each other's responses.
func (m *IdempotencyMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(deliverycontext.HeaderXIdempotencyKey)
		if key == "" {
			return domainerrors.ErrIdempotencyKeyRequired
		}

		actor, ok := ActorFromContext(c)
		if !ok {
			return domainerrors.ErrForbidden
		}
		scopedKey := actor.ID.String() + ":" + key

		ctx := c.Request().Context()
		cached, err := m.store.Check(ctx, scopedKey)
		if err != nil {
			// A broken cache must not block writes; the repository-level
			// unique constraint still prevents duplicates.
			m.logger.Warn("idempotency store lookup failed",
				slog.String("key", scopedKey),
				slog.String("error", err.Error()),
			)
		}
		if cached != nil {
			c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c.Response().Header().Set(HeaderXIdempotentReplay, "true")

			return c.Blob(cached.StatusCode, echo.MIMEApplicationJSON, cached.Body)
		}

		// First sight of this key: capture the response while it streams out.
		buffer := new(bytes.Buffer)
		writer := &captureResponseWriter{
			Writer:         io.MultiWriter(c.Response().Writer, buffer),
			ResponseWriter: c.Response().Writer,
		}
		c.Response().Writer = writer

		if err := next(c); err != nil {
			return err
		}

		status := c.Response().Status
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return nil
		}

		record := &entity.IdempotencyRecord{
			Key:        scopedKey,
			StatusCode: status,
			Body:       buffer.Bytes(),
		}
		if err := m.store.Store(ctx, record, m.ttl); err != nil {
			m.logger.Warn("failed to cache idempotent response",
				slog.String("key", scopedKey),
				slog.String("error", err.Error()),
			)
		}

		return nil
	}
}

// captureResponseWriter tees the response body into a buffer while writing
// through to the client.
type captureResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *captureResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *captureResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *captureResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}
