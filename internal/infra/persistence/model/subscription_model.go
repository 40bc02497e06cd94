package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// Rows accumulate per restaurant as renewal history; they are never deleted.
type SubscriptionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:text;not null;index;default:'PENDING'"`
	StartDate       *time.Time
	EndDate         *time.Time `gorm:"index"`
	MonthlyFeeCents int64      `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
