// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work in lifecycle hooks.
const DefaultTimeout = 30 * time.Second
