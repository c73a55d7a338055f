// Package session provides the conversation state store. Sessions are keyed by an
// opaque token issued at the HTTP boundary and hold the booking dialog state. Both
// implementations are bounded: the in-memory store evicts by capacity and idle TTL,
// the Redis store relies on key TTL.
package session

import (
	"context"

	"medassist/models"
)

// Store is the capability the orchestrator depends on for session state. Get on an
// unknown id returns a fresh zero state, never an error.
type Store interface {
	Get(ctx context.Context, id string) (*models.SessionState, error)
	Put(ctx context.Context, id string, state *models.SessionState) error
	Delete(ctx context.Context, id string) error
}
