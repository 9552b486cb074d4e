// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP API, worker) managed by the application lifecycle.
type Delivery interface {
	// Serve blocks until the surface stops or the context is canceled.
	Serve(ctx context.Context) error
}
