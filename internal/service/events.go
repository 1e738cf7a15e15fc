package service

import (
	"context"
	"log/slog"

	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/observability"
)

type EventsRepository interface {
	Create(ctx context.Context, e event.Event) (event.Event, error)
	GetByID(ctx context.Context, id string) (event.Event, error)
	GetBySlug(ctx context.Context, slug string) (event.Event, error)
	Update(ctx context.Context, e event.Event) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

// Events is the write path for event records: every create and update goes
// through event.Prepare before the repository sees it.
type Events struct {
	repo EventsRepository
	prom *observability.Prom
	log  *slog.Logger
}

func NewEvents(repo EventsRepository, prom *observability.Prom, log *slog.Logger) *Events {
	if log == nil {
		log = slog.Default()
	}

	return &Events{repo: repo, prom: prom, log: log}
}

func (s *Events) Create(ctx context.Context, req event.CreateEventRequest) (e event.Event, err error) {
	defer func() { s.observe(ctx, "create", e.ID, err) }()

	e, err = event.Prepare(event.NewFromCreateRequest(req), nil)
	if err != nil {
		return event.Event{}, err
	}

	return s.repo.Create(ctx, e)
}

func (s *Events) Get(ctx context.Context, id string) (event.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Events) GetBySlug(ctx context.Context, slug string) (event.Event, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Update applies a partial update. Slug, date and time are only re-derived when
// title, date or time actually changed.
func (s *Events) Update(ctx context.Context, id string, req event.UpdateEventRequest) (e event.Event, err error) {
	defer func() { s.observe(ctx, "update", id, err) }()

	prior, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return event.Event{}, err
	}

	e, err = event.Prepare(req.ApplyTo(prior), &prior)
	if err != nil {
		return event.Event{}, err
	}

	return s.repo.Update(ctx, e)
}

// Delete does not touch bookings that reference the event.
func (s *Events) Delete(ctx context.Context, id string) (err error) {
	defer func() { s.observe(ctx, "delete", id, err) }()

	return s.repo.Delete(ctx, id)
}

func (s *Events) observe(ctx context.Context, op, id string, err error) {
	out := outcome(err)
	s.prom.ObserveWrite("event", op, out)

	attrs := []any{"op", op, "event_id", id}

	if err != nil {
		s.log.DebugContext(ctx, "event write rejected", append(attrs, "outcome", out, "err", err)...)
		return
	}
	s.log.InfoContext(ctx, "event written", attrs...)
}
