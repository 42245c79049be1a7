// Package delivery holds the transport adapters that expose the use cases.
package delivery

import "context"

// Delivery is a long-running server started by the fx composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
