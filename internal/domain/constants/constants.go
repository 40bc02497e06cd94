// Package constants holds shared domain-level constants.
package constants

// Event publisher provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Sweep trigger sources, recorded in audit metadata for traceability.
const (
	SweepTriggerSchedule = "schedule"
	SweepTriggerManual   = "manual"
)
