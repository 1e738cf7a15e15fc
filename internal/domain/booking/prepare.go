package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/utils"
	"github.com/geocoder89/eventbook/internal/validation"
)

// EventLookup finds an event by id, projecting only the id.
// It returns event.ErrNotFound when no such event exists.
type EventLookup interface {
	LookupEventID(ctx context.Context, id string) (string, error)
}

// permissive syntactic check, not RFC 5322. \s is ASCII only in RE2 so
// \p{Z} covers the unicode separators such as U+00A0.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Prepare validates a candidate booking before it is written. prior is the stored
// version for updates and nil for new records. The referenced event is looked up
// only when the record is new or its event id changed.
func Prepare(ctx context.Context, candidate Booking, prior *Booking, lookup EventLookup) (Booking, error) {
	b := candidate
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.EventID = strings.TrimSpace(b.EventID)

	if err := validation.Struct(b); err != nil {
		return Booking{}, err
	}

	if !ValidEmail(b.Email) {
		return Booking{}, validation.Field("email", "email", "must be a valid email address")
	}

	// ids are compared and looked up in stored form, so case alone never changes the reference
	id, isUUID := utils.CanonicalUUID(b.EventID)
	if isUUID {
		b.EventID = id
	}

	if prior != nil && b.EventID == prior.EventID {
		return b, nil
	}

	if !isUUID {
		return Booking{}, fmt.Errorf("%w: %q", ErrInvalidEventID, b.EventID)
	}

	_, err := lookup.LookupEventID(ctx, b.EventID)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			return Booking{}, ErrEventNotFound
		}
		return Booking{}, fmt.Errorf("%w: %w", ErrEventLookup, err)
	}

	return b, nil
}
