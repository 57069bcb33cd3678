// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport such as the HTTP API.
type Delivery interface {
	// Serve blocks until the transport stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
