package service

import (
	"errors"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/validation"
)

// outcome buckets a write error for the records_writes_total metric.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, booking.ErrEventNotFound),
		errors.Is(err, booking.ErrInvalidEventID),
		errors.Is(err, booking.ErrEventLookup):
		return "referential"
	case errors.Is(err, validation.ErrInvalid):
		return "invalid"
	case errors.Is(err, event.ErrNotFound), errors.Is(err, booking.ErrNotFound):
		return "not_found"
	case errors.Is(err, event.ErrSlugTaken):
		return "conflict"
	default:
		return "error"
	}
}
