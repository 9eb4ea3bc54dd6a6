// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
