package service

import (
	"context"
	"time"
)

// AuditEvent is the integration event emitted for every audit ledger entry,
// consumed by downstream systems (compliance reports, admin UI).
type AuditEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EntryID       string    `json:"entry_id"`
	Action        string    `json:"action"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	CorrelationID string    `json:"correlation_id"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async downstream processing
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
