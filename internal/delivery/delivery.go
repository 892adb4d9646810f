// Package delivery defines the contract every transport (HTTP, worker)
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport adapter. Serve blocks until the
// transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
