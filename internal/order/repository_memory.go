package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository keeps wizard sessions in process memory. Snapshots are
// replaced wholesale under the lock, which gives every reader a consistent
// view without further coordination.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]State
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]State),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, s State) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.orders[id] = s
	return id, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.orders[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return s, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id string, fn func(State) (State, error)) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.orders[id]
	if !ok {
		return State{}, ErrNotFound
	}

	next, err := fn(cur)
	if err != nil {
		return State{}, err
	}

	r.orders[id] = next
	return next, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
