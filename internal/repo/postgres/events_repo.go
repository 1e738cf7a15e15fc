package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

// constructor function

func NewEventsRepo(pool *pgxpool.Pool, prom *observability.Prom) *EventsRepo {
	return &EventsRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *EventsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

const eventColumns = `id, title, slug, description, overview, image, venue, location,
	event_date, event_time, mode, audience, agenda, organizer, tags, created_at, updated_at`

func scanEvent(row pgx.Row) (event.Event, error) {
	var e event.Event

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Slug,
		&e.Description,
		&e.Overview,
		&e.Image,
		&e.Venue,
		&e.Location,
		&e.Date,
		&e.Time,
		&e.Mode,
		&e.Audience,
		&e.Agenda,
		&e.Organizer,
		&e.Tags,
		&e.CreatedAt,
		&e.UpdatedAt,
	)

	return e, err
}

func (r *EventsRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	err := r.observe("events.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO events (`+eventColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
			e.Date, e.Time, e.Mode, e.Audience, e.Agenda, e.Organizer, e.Tags, e.CreatedAt, e.UpdatedAt,
		)
		return err
	})

	if err != nil {
		if isConstraint(err, constraintEventsSlug) {
			return event.Event{}, event.ErrSlugTaken
		}
		return event.Event{}, err
	}

	return e, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	return r.getOne(ctx, "events.get_by_id", `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *EventsRepo) GetBySlug(ctx context.Context, slug string) (event.Event, error) {
	return r.getOne(ctx, "events.get_by_slug", `SELECT `+eventColumns+` FROM events WHERE slug = $1`, slug)
}

func (r *EventsRepo) getOne(ctx context.Context, op, query string, arg string) (event.Event, error) {
	var e event.Event

	err := r.observe(op, func() error {
		var err error
		e, err = scanEvent(r.pool.QueryRow(ctx, query, arg))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return event.Event{}, event.ErrNotFound
		}
		return event.Event{}, err
	}

	return e, nil
}

// LookupEventID is the existence check used before a booking is written. Only the id is projected.
func (r *EventsRepo) LookupEventID(ctx context.Context, id string) (string, error) {
	var found string

	err := r.observe("events.lookup_id", func() error {
		return r.pool.QueryRow(ctx, `SELECT id FROM events WHERE id = $1`, id).Scan(&found)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", event.ErrNotFound
		}
		// malformed ids and storage faults are reported as-is
		return "", err
	}

	return found, nil
}

func (r *EventsRepo) Update(ctx context.Context, e event.Event) (event.Event, error) {
	var out event.Event

	err := r.observe("events.update", func() error {
		var err error
		out, err = scanEvent(r.pool.QueryRow(
			ctx,
			`UPDATE events
				SET title = $2,
					slug = $3,
					description = $4,
					overview = $5,
					image = $6,
					venue = $7,
					location = $8,
					event_date = $9,
					event_time = $10,
					mode = $11,
					audience = $12,
					agenda = $13,
					organizer = $14,
					tags = $15,
					updated_at = NOW()
			WHERE id = $1
			RETURNING `+eventColumns,
			e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
			e.Date, e.Time, e.Mode, e.Audience, e.Agenda, e.Organizer, e.Tags,
		))
		return err
	})

	if err != nil {
		switch {
		// if there are no rows matching the id
		case errors.Is(err, pgx.ErrNoRows), isInvalidText(err):
			return event.Event{}, event.ErrNotFound
		case isConstraint(err, constraintEventsSlug):
			return event.Event{}, event.ErrSlugTaken
		}
		return event.Event{}, err
	}

	return out, nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("events.delete", func() error {
		var err error
		tag, err = r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		return err
	})

	if err != nil {
		if isInvalidText(err) {
			return event.ErrNotFound
		}
		return err
	}

	// if no rows were deleted as a result return a not found error
	if tag.RowsAffected() == 0 {
		return event.ErrNotFound
	}

	return nil
}
