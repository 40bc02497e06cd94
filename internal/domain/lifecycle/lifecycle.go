// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout is the grace period for startup probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
