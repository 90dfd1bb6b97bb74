// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application, such as the HTTP API or
// the notification worker. Each implementation blocks in Serve until the
// surface shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
