package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrNotFound = errors.New("booking not found")

	// referential failures, kept apart so callers can tell a missing event from a bad id or a storage fault
	ErrEventNotFound  = errors.New("event does not exist")
	ErrInvalidEventID = errors.New("invalid event id format")
	ErrEventLookup    = errors.New("event lookup failed")
)

type CreateBookingRequest struct {
	EventID string `json:"eventId"`
	Email   string `json:"email"`
}

// UpdateBookingRequest is a partial update: nil fields keep their stored value.
type UpdateBookingRequest struct {
	EventID *string `json:"eventId"`
	Email   *string `json:"email"`
}

func NewFromCreateRequest(req CreateBookingRequest) Booking {
	now := time.Now().UTC()

	return Booking{
		ID:        uuid.NewString(),
		EventID:   req.EventID,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (req UpdateBookingRequest) ApplyTo(b Booking) Booking {
	out := b

	if req.EventID != nil {
		out.EventID = *req.EventID
	}
	if req.Email != nil {
		out.Email = *req.Email
	}

	return out
}
