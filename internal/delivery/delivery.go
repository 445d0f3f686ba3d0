// Package delivery defines the contract shared by every transport
// server the application runs.
package delivery

import "context"

// Delivery is a long-running server started by the application runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}
