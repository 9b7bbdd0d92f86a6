// Package delivery holds the inbound transports of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
