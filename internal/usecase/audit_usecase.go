package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditUsecase exposes the compliance ledger to admin queries.
type AuditUsecase interface {
	// ListByEntity retrieves the trail of one entity, oldest first. Admin only.
	ListByEntity(ctx context.Context, actor entity.Actor, entityType entity.EntityType, entityID uuid.UUID) ([]*entity.AuditLogEntry, error)

	// ListByCorrelationID retrieves every entry of one request or job run,
	// oldest first. Admin only.
	ListByCorrelationID(ctx context.Context, actor entity.Actor, correlationID uuid.UUID) ([]*entity.AuditLogEntry, error)
}
