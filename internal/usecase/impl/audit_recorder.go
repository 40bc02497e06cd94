// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuditRecorder appends entries to the compliance ledger and emits the
// matching integration event. Ledger writes are mandatory and fail the
// operation; event publishing is best-effort and only logged on failure.
type AuditRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AuditRecorderParams holds dependencies for AuditRecorder, injected by Fx.
type AuditRecorderParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuditRecorder creates a new audit recorder instance.
func NewAuditRecorder(params AuditRecorderParams) *AuditRecorder {
	return &AuditRecorder{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Record writes one entry through the given repository (which may be bound to
// a transaction) and publishes the integration event.
func (r *AuditRecorder) Record(ctx context.Context, auditRepo repository.AuditLogRepository, entry *entity.AuditLogEntry) error {
	if err := r.Write(ctx, auditRepo, entry); err != nil {
		return err
	}

	r.Publish(ctx, entry)

	return nil
}

// Write appends one entry to the ledger without publishing. Callers batching
// writes inside a transaction publish after commit via Publish.
func (r *AuditRecorder) Write(ctx context.Context, auditRepo repository.AuditLogRepository, entry *entity.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := auditRepo.Create(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to write audit log entry")
	}

	return nil
}

// Publish emits the integration event for an already-persisted entry.
// Failures are logged and swallowed: the ledger row is the source of truth.
func (r *AuditRecorder) Publish(ctx context.Context, entry *entity.AuditLogEntry) {
	event := &service.AuditEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EntryID:       entry.ID.String(),
		Action:        string(entry.Action),
		EntityType:    string(entry.EntityType),
		EntityID:      entry.EntityID.String(),
		CorrelationID: entry.CorrelationID.String(),
		ActorID:       entry.ActorID.String(),
		OccurredAt:    entry.CreatedAt,
	}

	if err := r.publisher.PublishAuditEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
		logger.Warn("failed to publish audit event",
			slog.String("entryID", event.EntryID),
			slog.String("action", event.Action),
			slog.String("error", err.Error()),
		)
	}
}
