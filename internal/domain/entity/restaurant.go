// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantStatus represents the lifecycle state of a restaurant on the platform.
type RestaurantStatus string

const (
	// RestaurantStatusPending indicates a newly registered restaurant awaiting its first subscription.
	RestaurantStatusPending RestaurantStatus = "PENDING"
	// RestaurantStatusActive indicates a restaurant backed by a validated subscription.
	RestaurantStatusActive RestaurantStatus = "ACTIVE"
	// RestaurantStatusSuspended indicates a restaurant hidden after subscription expiry or admin action.
	RestaurantStatusSuspended RestaurantStatus = "SUSPENDED"
	// RestaurantStatusInactive indicates a restaurant deactivated by its owner.
	RestaurantStatusInactive RestaurantStatus = "INACTIVE"
)

// String returns the string representation of the RestaurantStatus.
func (s RestaurantStatus) String() string {
	return string(s)
}

// IsValid checks if the RestaurantStatus is a valid value.
func (s RestaurantStatus) IsValid() bool {
	switch s {
	case RestaurantStatusPending, RestaurantStatusActive, RestaurantStatusSuspended, RestaurantStatusInactive:
		return true
	default:
		return false
	}
}

// Restaurant represents a merchant storefront on the marketplace.
// Transitions return a new copy rather than mutating in place, so a
// Restaurant value can be shared across requests without locks.
type Restaurant struct {
	ID        uuid.UUID        `json:"id"`                   // The Global Unique Identifier (GUID) for the restaurant.
	OwnerID   uuid.UUID        `json:"owner_id"`             // The ID of the owner account.
	Name      string           `json:"name"`                 // The restaurant's public display name.
	Status    RestaurantStatus `json:"status"`               // Current lifecycle status.
	DeletedAt *time.Time       `json:"deleted_at,omitempty"` // Soft-delete timestamp; nil when the restaurant is live.
	CreatedAt time.Time        `json:"created_at"`           // Timestamp of when the restaurant was registered.
	UpdatedAt time.Time        `json:"updated_at"`           // Timestamp of the last modification.
}

// IsActive reports whether the restaurant status is ACTIVE.
func (r Restaurant) IsActive() bool {
	return r.Status == RestaurantStatusActive
}

// IsDeleted reports whether the restaurant has been soft-deleted.
func (r Restaurant) IsDeleted() bool {
	return r.DeletedAt != nil
}

// IsVisible reports whether the restaurant is exposed to customer-facing reads.
// Recomputed on every call; never persisted, so suspension takes effect on the
// next read with zero propagation delay.
func (r Restaurant) IsVisible() bool {
	return r.IsActive() && !r.IsDeleted()
}

// VisibilityScore is the derived exposure score used by listing responses.
func (r Restaurant) VisibilityScore() int {
	if r.IsVisible() {
		return 100
	}

	return 0
}

// CanReceiveOrders reports whether the restaurant may accept new orders.
func (r Restaurant) CanReceiveOrders() bool {
	return r.IsActive()
}

// WithStatus returns a copy of the restaurant in the given status.
func (r Restaurant) WithStatus(status RestaurantStatus, now time.Time) Restaurant {
	r.Status = status
	r.UpdatedAt = now

	return r
}

// WithDeleted returns a soft-deleted copy of the restaurant.
func (r Restaurant) WithDeleted(now time.Time) Restaurant {
	deletedAt := now
	r.DeletedAt = &deletedAt
	r.UpdatedAt = now

	return r
}

// WithRestored returns a copy of the restaurant with the soft-delete flag cleared.
func (r Restaurant) WithRestored(now time.Time) Restaurant {
	r.DeletedAt = nil
	r.UpdatedAt = now

	return r
}
