package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository defines the session-store contract. Service depends ONLY on
// this interface. Orders live for one wizard session; there is no durable
// backing store.
type Repository interface {
	Create(ctx context.Context, s State) (string, error)
	Get(ctx context.Context, id string) (State, error)
	// Update runs fn against the current snapshot and stores its result.
	// Calls for the same id are serialized, so fn sees a consistent snapshot.
	Update(ctx context.Context, id string, fn func(State) (State, error)) (State, error)
	Delete(ctx context.Context, id string) error
}
