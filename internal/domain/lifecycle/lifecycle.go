// Package lifecycle holds timing constants shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as database pings and server shutdown.
const DefaultTimeout = 15 * time.Second
