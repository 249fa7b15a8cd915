// Package delivery holds the inbound adapters started by the binaries.
package delivery

import "context"

// Delivery is an inbound adapter the binary starts once fx has wired it.
type Delivery interface {
	Serve(ctx context.Context) error
}
