// Package store reads the three collections the worker needs from the
// document store. All access is read-only; records are owned and mutated
// entirely by the applications that write them.
package store

import (
	"context"

	"dateminder/internal/types"
)

// Reader is the read-only view of the document store consumed by the job
// runner.
type Reader interface {
	// DeliveryConfig returns the config/emailConfig document, or (nil, nil)
	// when the document does not exist. Completeness is the caller's check.
	DeliveryConfig(ctx context.Context) (*types.DeliveryConfig, error)

	// People returns every tracked person record.
	People(ctx context.Context) ([]types.Person, error)

	// Subscribers returns every digest recipient, in store order.
	Subscribers(ctx context.Context) ([]types.Subscriber, error)
}
