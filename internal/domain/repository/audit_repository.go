// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogRepository is the append-only port for the compliance ledger.
// There is deliberately no update or delete operation.
type AuditLogRepository interface {
	// Create appends one entry to the ledger.
	Create(ctx context.Context, entry *entity.AuditLogEntry) error

	// ListByEntity retrieves all entries for one entity, oldest first.
	ListByEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]*entity.AuditLogEntry, error)

	// ListByCorrelationID retrieves all entries of one request or job run, oldest first.
	ListByCorrelationID(ctx context.Context, correlationID uuid.UUID) ([]*entity.AuditLogEntry, error)
}
