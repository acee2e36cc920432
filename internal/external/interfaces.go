// Package external holds the clients for third-party services the worker
// talks to. Provider specifics stay behind small interfaces so the job runner
// never depends on a concrete vendor API.
package external

import (
	"context"

	"dateminder/internal/types"
)

// EmailProvider abstracts the transactional email service. A send is a single
// attempt: the provider performs no retries, and a failed send for one
// recipient must not affect any other.
type EmailProvider interface {
	Send(ctx context.Context, input types.SendInput) error
}
