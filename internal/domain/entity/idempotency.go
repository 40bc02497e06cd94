// Package entity contains the core business objects of the project.
package entity

import "time"

// DefaultIdempotencyTTL is the retention window for cached responses.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyRecord is the cached outcome of a completed state-changing
// operation, replayed verbatim when the same key is presented again.
// Records are created once, expire by TTL and are never updated.
type IdempotencyRecord struct {
	Key        string `json:"key"`         // Client-supplied opaque key, unique per actor.
	StatusCode int    `json:"status_code"` // HTTP status of the original response.
	Body       []byte `json:"body"`        // Original response body, replayed byte for byte.
}
