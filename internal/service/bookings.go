package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/observability"
)

const defaultLookupTimeout = 2 * time.Second

type BookingsRepository interface {
	Create(ctx context.Context, b booking.Booking) (booking.Booking, error)
	GetByID(ctx context.Context, id string) (booking.Booking, error)
	Update(ctx context.Context, b booking.Booking) (booking.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Bookings is the write path for booking records. The referenced event is
// checked once per write; nothing is locked between the check and the insert.
type Bookings struct {
	repo          BookingsRepository
	events        booking.EventLookup
	lookupTimeout time.Duration
	prom          *observability.Prom
	log           *slog.Logger
}

func NewBookings(repo BookingsRepository, events booking.EventLookup, prom *observability.Prom, log *slog.Logger) *Bookings {
	if log == nil {
		log = slog.Default()
	}

	return &Bookings{
		repo:          repo,
		events:        events,
		lookupTimeout: defaultLookupTimeout,
		prom:          prom,
		log:           log,
	}
}

func (s *Bookings) Create(ctx context.Context, req booking.CreateBookingRequest) (b booking.Booking, err error) {
	defer func() { s.observe(ctx, "create", b.ID, b.EventID, err) }()

	b, err = s.prepare(ctx, booking.NewFromCreateRequest(req), nil)
	if err != nil {
		return booking.Booking{}, err
	}

	return s.repo.Create(ctx, b)
}

func (s *Bookings) Get(ctx context.Context, id string) (booking.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Bookings) Update(ctx context.Context, id string, req booking.UpdateBookingRequest) (b booking.Booking, err error) {
	defer func() { s.observe(ctx, "update", id, b.EventID, err) }()

	prior, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}

	b, err = s.prepare(ctx, req.ApplyTo(prior), &prior)
	if err != nil {
		return booking.Booking{}, err
	}

	return s.repo.Update(ctx, b)
}

func (s *Bookings) Delete(ctx context.Context, id string) (err error) {
	defer func() { s.observe(ctx, "delete", id, "", err) }()

	return s.repo.Delete(ctx, id)
}

func (s *Bookings) prepare(ctx context.Context, candidate booking.Booking, prior *booking.Booking) (booking.Booking, error) {
	lctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	return booking.Prepare(lctx, candidate, prior, s.events)
}

func (s *Bookings) observe(ctx context.Context, op, id, eventID string, err error) {
	out := outcome(err)
	s.prom.ObserveWrite("booking", op, out)

	attrs := []any{"op", op, "booking_id", id, "event_id", eventID}

	if err != nil {
		s.log.DebugContext(ctx, "booking write rejected", append(attrs, "outcome", out, "err", err)...)
		return
	}
	s.log.InfoContext(ctx, "booking written", attrs...)
}
