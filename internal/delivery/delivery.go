// Package delivery holds the inbound surfaces (HTTP API, Pub/Sub push worker).
package delivery

import (
	"context"
)

// Delivery is a long-running inbound server started by the application root.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
