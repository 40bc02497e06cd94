package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SweepItemError records one subscription the sweep failed to process.
type SweepItemError struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Reason         string    `json:"reason"`
}

// SweepSummary is the outcome of one sweep run. Deterministic for a given
// database state: a second run over an unchanged clock processes nothing.
type SweepSummary struct {
	JobID     uuid.UUID        `json:"job_id"` // Also the correlation id of every audit entry the run wrote.
	Trigger   string           `json:"trigger"`
	Processed int              `json:"processed"`
	Expired   int              `json:"expired"`
	Suspended int              `json:"suspended"`
	Errors    []SweepItemError `json:"errors,omitempty"`
}

// SweepUsecase runs the subscription expiration sweep.
type SweepUsecase interface {
	// Run expires every overdue subscription and suspends the owning
	// restaurants. Item-level failures are collected in the summary and
	// never abort the batch.
	Run(ctx context.Context, trigger string) (*SweepSummary, error)
}
