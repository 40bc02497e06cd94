package postgres

import (
	"context"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
// The backing table is append-only; this type exposes no update or delete.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends one entry to the ledger.
func (repo *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM := fromAuditLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByEntity retrieves all entries for one entity, oldest first.
func (repo *auditLogRepository) ListByEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	var entryModels []*model.AuditLogModel

	if err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit log entries by entity")
	}

	return toAuditLogDomainSlice(entryModels), nil
}

// ListByCorrelationID retrieves all entries of one request or job run, oldest first.
func (repo *auditLogRepository) ListByCorrelationID(ctx context.Context, correlationID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	var entryModels []*model.AuditLogModel

	if err := repo.db.WithContext(ctx).
		Where("correlation_id = ?", correlationID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit log entries by correlation ID")
	}

	return toAuditLogDomainSlice(entryModels), nil
}

// --- Mapper Functions ---

func toAuditLogDomainSlice(entryModels []*model.AuditLogModel) []*entity.AuditLogEntry {
	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditLogDomain(entryM))
	}

	return entries
}

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLogEntry.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLogEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditLogEntry{
		ID:            data.ID,
		Action:        entity.AuditAction(data.Action),
		EntityType:    entity.EntityType(data.EntityType),
		EntityID:      data.EntityID,
		PreviousState: data.PreviousState,
		NewState:      data.NewState,
		CorrelationID: data.CorrelationID,
		ActorID:       data.ActorID,
		Metadata:      data.Metadata,
		CreatedAt:     data.CreatedAt,
	}
}

// fromAuditLogDomain converts a domain AuditLogEntry to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLogEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	metadata := data.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &model.AuditLogModel{
		ID:            data.ID,
		Action:        string(data.Action),
		EntityType:    string(data.EntityType),
		EntityID:      data.EntityID,
		PreviousState: data.PreviousState,
		NewState:      data.NewState,
		CorrelationID: data.CorrelationID,
		ActorID:       data.ActorID,
		Metadata:      metadata,
		CreatedAt:     data.CreatedAt,
	}
}
