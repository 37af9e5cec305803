// Package memory implements domain.EventRepository on an in-process
// collection. The calendar deliberately keeps no storage across sessions;
// everything lives here for the lifetime of the server.
package memory

import (
	"context"
	"sync"

	"weekscheduler/internal/domain"

	"github.com/google/uuid"
)

// EventRepository holds the canonical event collection in insertion order.
// All reads return clones so callers can never mutate store state directly.
type EventRepository struct {
	mu     sync.Mutex
	events []*domain.Event
}

// NewEventRepository returns an empty repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// Create assigns a fresh id to the event and appends it to the collection.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = uuid.NewString()
	r.events = append(r.events, event.Clone())
	return nil
}

// GetByID returns the event with the given id, or domain.ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Replace swaps the stored record with the same id for the given one,
// keeping its position in insertion order. Returns domain.ErrNotFound if
// no record has that id.
func (r *EventRepository) Replace(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.events {
		if e.ID == event.ID {
			r.events[i] = event.Clone()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes the event with the given id. A second delete of the same id
// returns domain.ErrNotFound.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByDate returns every event on the given date, in insertion order.
func (r *EventRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*domain.Event{}
	for _, e := range r.events {
		if e.Date == date {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}
