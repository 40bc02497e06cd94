package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
// The table is append-only; no update or delete statement ever touches it.
type AuditLogModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Action        string            `gorm:"type:text;not null;index"`
	EntityType    string            `gorm:"type:text;not null;index:idx_audit_entity"`
	EntityID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_audit_entity"`
	PreviousState datatypes.JSONMap `gorm:"type:jsonb"`
	NewState      datatypes.JSONMap `gorm:"type:jsonb"`
	CorrelationID uuid.UUID         `gorm:"type:uuid;not null;index"`
	ActorID       uuid.UUID         `gorm:"type:uuid;not null"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
