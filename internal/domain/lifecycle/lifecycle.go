// Package lifecycle holds shared start/stop bounds.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks and server shutdown.
const DefaultTimeout = 10 * time.Second
