// Package delivery defines the contract shared by all transport entrypoints.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, scheduled worker)
// started by the application container and stopped through fx lifecycle hooks.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
