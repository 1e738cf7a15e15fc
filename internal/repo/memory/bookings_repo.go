package memory

import (
	"context"
	"sync"
	"time"

	"github.com/geocoder89/eventbook/internal/domain/booking"
)

type BookingsRepo struct {
	mu    sync.RWMutex
	items map[string]booking.Booking
}

func NewBookingsRepo() *BookingsRepo {
	return &BookingsRepo{
		items: make(map[string]booking.Booking),
	}
}

func (r *BookingsRepo) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	r.mu.Lock()
	r.items[b.ID] = b
	r.mu.Unlock()

	return b, nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return booking.Booking{}, booking.ErrNotFound
	}
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[b.ID]
	if !ok {
		return booking.Booking{}, booking.ErrNotFound
	}

	b.CreatedAt = prev.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	r.items[b.ID] = b

	return b, nil
}

func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.items, id)

	return nil
}

// Count is used by tests to assert nothing was persisted.
func (r *BookingsRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
