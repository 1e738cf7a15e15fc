package event

import (
	"strings"

	"github.com/geocoder89/eventbook/internal/validation"
)

// Prepare validates and normalizes a candidate record before it is written.
// prior is the stored version for updates and nil for new records. Derived fields
// are only recomputed when their source changed, otherwise they are carried over from prior.
func Prepare(candidate Event, prior *Event) (Event, error) {
	e := candidate
	e.trim()

	if err := validation.Struct(e); err != nil {
		return Event{}, err
	}

	if prior == nil || e.Title != prior.Title {
		slug := GenerateSlug(e.Title)
		if slug == "" {
			return Event{}, validation.Field("title", "slug", "must contain at least one letter or digit")
		}
		e.Slug = slug
	} else {
		e.Slug = prior.Slug
	}

	if prior == nil || e.Date != prior.Date {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			return Event{}, err
		}
		e.Date = date
	}

	if prior == nil || e.Time != prior.Time {
		t, err := NormalizeTime(e.Time)
		if err != nil {
			return Event{}, err
		}
		e.Time = t
	}

	return e, nil
}

func (e *Event) trim() {
	for _, f := range []*string{
		&e.Title,
		&e.Description,
		&e.Overview,
		&e.Image,
		&e.Venue,
		&e.Location,
		&e.Audience,
		&e.Organizer,
	} {
		*f = strings.TrimSpace(*f)
	}
}
