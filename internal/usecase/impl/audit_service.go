package impl

import (
	"context"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type auditService struct {
	auditRepo repository.AuditLogRepository
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit query service instance.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		auditRepo: params.AuditRepo,
	}
}

// ListByEntity retrieves the trail of one entity, oldest first.
func (s *auditService) ListByEntity(ctx context.Context, actor entity.Actor, entityType entity.EntityType, entityID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	entries, err := s.auditRepo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries by entity")
	}

	return entries, nil
}

// ListByCorrelationID retrieves every entry of one request or job run, oldest first.
func (s *auditService) ListByCorrelationID(ctx context.Context, actor entity.Actor, correlationID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	entries, err := s.auditRepo.ListByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries by correlation id")
	}

	return entries, nil
}
