// Package delivery defines the contract every inbound transport fulfills.
package delivery

import "context"

// Delivery is a long-running inbound surface (the HTTP server). Serve blocks
// until the surface stops; shutdown happens through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
