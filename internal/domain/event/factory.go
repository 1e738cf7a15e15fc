package event

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateEventRequest) Event {
	now := time.Now().UTC()

	return Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      cloneStrings(req.Agenda),
		Organizer:   req.Organizer,
		Tags:        cloneStrings(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyTo returns a copy of e with the provided fields overwritten.
func (req UpdateEventRequest) ApplyTo(e Event) Event {
	out := e
	out.Agenda = cloneStrings(e.Agenda)
	out.Tags = cloneStrings(e.Tags)

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&out.Title, req.Title)
	set(&out.Description, req.Description)
	set(&out.Overview, req.Overview)
	set(&out.Image, req.Image)
	set(&out.Venue, req.Venue)
	set(&out.Location, req.Location)
	set(&out.Date, req.Date)
	set(&out.Time, req.Time)
	set(&out.Audience, req.Audience)
	set(&out.Organizer, req.Organizer)

	if req.Mode != nil {
		out.Mode = *req.Mode
	}
	if req.Agenda != nil {
		out.Agenda = cloneStrings(*req.Agenda)
	}
	if req.Tags != nil {
		out.Tags = cloneStrings(*req.Tags)
	}

	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
