// Package lifecycle holds shared shutdown conventions.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and subscriptions.
const DefaultTimeout = 10 * time.Second
