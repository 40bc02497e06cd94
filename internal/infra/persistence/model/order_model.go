package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Line items are stored as an immutable jsonb snapshot taken at creation time.
type OrderModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	IdempotencyKey     string         `gorm:"type:text;not null;uniqueIndex"`
	Status             string         `gorm:"type:text;not null;index;default:'PENDING'"`
	Items              datatypes.JSON `gorm:"type:jsonb;not null"`
	TotalCents         int64          `gorm:"not null"`
	RejectionReason    string         `gorm:"type:text"`
	CancellationReason string         `gorm:"type:text"`
	ReportReason       string         `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
