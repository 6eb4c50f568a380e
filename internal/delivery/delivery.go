// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop). Serve
// blocks until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
