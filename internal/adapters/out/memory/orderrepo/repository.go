// Package orderrepo provides the in-memory implementation of the order
// store. Orders live for the lifetime of the process; a restart loses them.
package orderrepo

import (
	"context"
	"sync"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"

	"quickbite/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Repository is the authoritative in-memory mapping from order identifier to
// order record. A mutex guards the map and the identifier counter so the
// repository can be shared between HTTP handlers and the progression job.
//
// Snapshot discipline: every order going in or out is cloned, so callers can
// never mutate stored state through an aliased pointer and snapshots already
// handed out never change retroactively.
type Repository struct {
	mu       sync.Mutex
	sequence uint64
	byID     map[string]*order.Order
	inserted []string
}

// NewRepository creates an empty order repository with its identifier
// counter seeded at 1 for the first order.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*order.Order),
	}
}

// NextID produces a fresh unique order identifier by incrementing the
// repository-wide counter. Identifiers are never reused, even after the
// order reaches its terminal status.
func (r *Repository) NextID() (kernel.OrderID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	return kernel.NewOrderID(r.sequence)
}

// Add persists a new order aggregate.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.byID[key]; !exists {
		r.inserted = append(r.inserted, key)
	}
	r.byID[key] = aggregate.Clone()
	return nil
}

// Update persists changes to an existing order aggregate.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.byID[key]; !exists {
		return errs.NewObjectNotFoundError("orderID", key)
	}
	r.byID[key] = aggregate.Clone()
	return nil
}

// Get retrieves a snapshot of the order with the given identifier.
func (r *Repository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return stored.Clone(), nil
}

// GetAll retrieves snapshots of every order in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*order.Order, 0, len(r.inserted))
	for _, key := range r.inserted {
		all = append(all, r.byID[key].Clone())
	}
	return all, nil
}
