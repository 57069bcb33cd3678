// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook such as a ping or a graceful shutdown.
const DefaultTimeout = 10 * time.Second
