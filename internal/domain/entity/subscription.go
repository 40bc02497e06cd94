// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the lifecycle state of a monthly subscription.
type SubscriptionStatus string

const (
	// SubscriptionStatusPending indicates a subscription awaiting admin payment validation.
	SubscriptionStatusPending SubscriptionStatus = "PENDING"
	// SubscriptionStatusActive indicates a paid subscription with concrete start/end dates.
	SubscriptionStatusActive SubscriptionStatus = "ACTIVE"
	// SubscriptionStatusExpired indicates a subscription expired by the sweep job.
	SubscriptionStatusExpired SubscriptionStatus = "EXPIRED"
	// SubscriptionStatusCancelled indicates a subscription explicitly cancelled by owner or admin.
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// Subscription represents one month of paid visibility for a restaurant.
// A restaurant accumulates subscription rows over time (renewal history);
// only the most recent ACTIVE one with a future end date counts as current.
type Subscription struct {
	ID              uuid.UUID          `json:"id"`                // The Global Unique Identifier (GUID) for the subscription.
	RestaurantID    uuid.UUID          `json:"restaurant_id"`     // The restaurant this subscription pays for.
	Status          SubscriptionStatus `json:"status"`            // Current lifecycle status.
	StartDate       *time.Time         `json:"start_date"`        // Set when the subscription is activated.
	EndDate         *time.Time         `json:"end_date"`          // Start + 1 calendar month; nil until activation.
	MonthlyFeeCents int64              `json:"monthly_fee_cents"` // The monthly fee, in cents.
	CreatedAt       time.Time          `json:"created_at"`        // Timestamp of when the subscription was requested.
	UpdatedAt       time.Time          `json:"updated_at"`        // Timestamp of the last modification.
}

// IsValid reports whether the subscription grants visibility at the given instant.
// Pure function of stored fields and the supplied clock; never cached.
func (s Subscription) IsValid(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate != nil && s.EndDate.After(now)
}

// IsExpired reports whether the subscription end date has passed.
// A subscription with no end date is never "expired"; it simply is not valid.
func (s Subscription) IsExpired(now time.Time) bool {
	return s.EndDate != nil && !s.EndDate.After(now)
}

// IsOverdue reports whether the sweep job should expire this subscription.
func (s Subscription) IsOverdue(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.IsExpired(now)
}

// DaysRemaining returns the number of whole days until the end date,
// or zero when the subscription is not valid.
func (s Subscription) DaysRemaining(now time.Time) int {
	if !s.IsValid(now) {
		return 0
	}

	return int(s.EndDate.Sub(now).Hours() / 24)
}

// WithActivated returns a copy of the subscription activated at the given
// instant, with the end date one calendar month after the start.
func (s Subscription) WithActivated(now time.Time) Subscription {
	start := now
	end := start.AddDate(0, 1, 0)
	s.Status = SubscriptionStatusActive
	s.StartDate = &start
	s.EndDate = &end
	s.UpdatedAt = now

	return s
}

// WithStatus returns a copy of the subscription in the given status.
func (s Subscription) WithStatus(status SubscriptionStatus, now time.Time) Subscription {
	s.Status = status
	s.UpdatedAt = now

	return s
}
