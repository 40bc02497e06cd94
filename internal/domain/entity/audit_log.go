// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction enumerates the auditable state transitions on the platform.
type AuditAction string

const (
	AuditActionRestaurantCreated     AuditAction = "RESTAURANT_CREATED"
	AuditActionRestaurantActivated   AuditAction = "RESTAURANT_ACTIVATED"
	AuditActionRestaurantSuspended   AuditAction = "RESTAURANT_SUSPENDED"
	AuditActionRestaurantDeleted     AuditAction = "RESTAURANT_DELETED"
	AuditActionRestaurantRestored    AuditAction = "RESTAURANT_RESTORED"
	AuditActionSubscriptionCreated   AuditAction = "SUBSCRIPTION_CREATED"
	AuditActionSubscriptionActivated AuditAction = "SUBSCRIPTION_ACTIVATED"
	AuditActionSubscriptionExpired   AuditAction = "SUBSCRIPTION_EXPIRED"
	AuditActionSubscriptionCancelled AuditAction = "SUBSCRIPTION_CANCELLED"
	AuditActionProductCreated        AuditAction = "PRODUCT_CREATED"
	AuditActionProductUpdated        AuditAction = "PRODUCT_UPDATED"
	AuditActionProductDeleted        AuditAction = "PRODUCT_DELETED"
	AuditActionOrderCreated          AuditAction = "ORDER_CREATED"
	AuditActionOrderTransitioned     AuditAction = "ORDER_TRANSITIONED"
)

// EntityType names the kind of entity an audit entry refers to.
type EntityType string

const (
	EntityTypeRestaurant   EntityType = "restaurant"
	EntityTypeSubscription EntityType = "subscription"
	EntityTypeProduct      EntityType = "product"
	EntityTypeOrder        EntityType = "order"
)

// AuditLogEntry is one write-once row in the compliance ledger. Every mutating
// action produces exactly one matching entry; the store has no update or delete.
type AuditLogEntry struct {
	ID            uuid.UUID      `json:"id"`
	Action        AuditAction    `json:"action"`
	EntityType    EntityType     `json:"entity_type"`
	EntityID      uuid.UUID      `json:"entity_id"`
	PreviousState map[string]any `json:"previous_state,omitempty"` // Opaque snapshot of the entity before the mutation.
	NewState      map[string]any `json:"new_state,omitempty"`      // Opaque snapshot of the entity after the mutation.
	CorrelationID uuid.UUID      `json:"correlation_id"`           // Shared by all entries of one request or job run.
	ActorID       uuid.UUID      `json:"actor_id"`                 // Who triggered the mutation; the system actor for jobs.
	Metadata      map[string]any `json:"metadata,omitempty"`       // Free-form context, e.g. job id and trigger source.
	CreatedAt     time.Time      `json:"created_at"`
}

// SystemActorID is the well-known actor recorded for unattended jobs.
var SystemActorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
