package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/geocoder89/eventbook/internal/validation"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Event is the persisted record. Slug, Date and Time hold their canonical forms once Prepare has run.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,max=100"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required,max=1000"`
	Overview    string    `json:"overview" validate:"required,max=500"`
	Image       string    `json:"image" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Mode        Mode      `json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string    `json:"audience" validate:"required"`
	Agenda      []string  `json:"agenda" validate:"required,min=1"`
	Organizer   string    `json:"organizer" validate:"required"`
	Tags        []string  `json:"tags" validate:"required,min=1"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var (
	ErrNotFound  = errors.New("event not found")
	ErrSlugTaken = errors.New("event slug already exists")

	ErrInvalidDate = fmt.Errorf("%w: invalid date format", validation.ErrInvalid)
	ErrInvalidTime = fmt.Errorf("%w: invalid time format", validation.ErrInvalid)
)

// validation happens in Prepare, the request only describes the payload shape
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        Mode     `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

// UpdateEventRequest is a partial update: nil fields keep their stored value.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Overview    *string   `json:"overview"`
	Image       *string   `json:"image"`
	Venue       *string   `json:"venue"`
	Location    *string   `json:"location"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Mode        *Mode     `json:"mode"`
	Audience    *string   `json:"audience"`
	Agenda      *[]string `json:"agenda"`
	Organizer   *string   `json:"organizer"`
	Tags        *[]string `json:"tags"`
}
