package memory

import (
	"context"
	"sync"
	"time"

	"github.com/geocoder89/eventbook/internal/domain/event"
)

// EventsRepo mirrors the postgres repo, including the unique slug constraint.
type EventsRepo struct {
	mu     sync.RWMutex
	items  map[string]event.Event // {"id": event}
	bySlug map[string]string      // {"slug": id}
}

func NewEventsRepo() *EventsRepo {
	return &EventsRepo{
		items:  make(map[string]event.Event),
		bySlug: make(map[string]string),
	}
}

func (r *EventsRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlug[e.Slug]; taken {
		return event.Event{}, event.ErrSlugTaken
	}

	r.items[e.ID] = e
	r.bySlug[e.Slug] = e.ID

	return e, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return e, nil
}

func (r *EventsRepo) GetBySlug(ctx context.Context, slug string) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return r.items[id], nil
}

func (r *EventsRepo) LookupEventID(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	_, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return "", event.ErrNotFound
	}
	return id, nil
}

func (r *EventsRepo) Update(ctx context.Context, e event.Event) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[e.ID]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}

	if owner, taken := r.bySlug[e.Slug]; taken && owner != e.ID {
		return event.Event{}, event.ErrSlugTaken
	}

	e.CreatedAt = prev.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	delete(r.bySlug, prev.Slug)
	r.bySlug[e.Slug] = e.ID
	r.items[e.ID] = e

	return e, nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return event.ErrNotFound
	}

	delete(r.items, id)
	delete(r.bySlug, e.Slug)

	return nil
}
