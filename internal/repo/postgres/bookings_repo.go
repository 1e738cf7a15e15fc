package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewBookingsRepo(pool *pgxpool.Pool, prom *observability.Prom) *BookingsRepo {
	return &BookingsRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *BookingsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

// Create inserts a booking that has already passed booking.Prepare.
// bookings.event_id carries no foreign key: the reference is checked at write time only.
func (repo *BookingsRepo) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	err := repo.observe("bookings.create", func() error {
		_, err := repo.pool.Exec(ctx, `
		INSERT INTO bookings (id, event_id, email, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`, b.ID, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt)
		return err
	})

	if err != nil {
		return booking.Booking{}, err
	}

	return b, nil
}

func (repo *BookingsRepo) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	var b booking.Booking

	err := repo.observe("bookings.get_by_id", func() error {
		return repo.pool.QueryRow(ctx, `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE id = $1
		`, id).Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return booking.Booking{}, booking.ErrNotFound
		}
		return booking.Booking{}, err
	}

	return b, nil
}

func (repo *BookingsRepo) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	var out booking.Booking

	err := repo.observe("bookings.update", func() error {
		return repo.pool.QueryRow(ctx, `
		UPDATE bookings
			SET event_id = $2,
				email = $3,
				updated_at = NOW()
		WHERE id = $1
		RETURNING id, event_id, email, created_at, updated_at
		`, b.ID, b.EventID, b.Email).Scan(&out.ID, &out.EventID, &out.Email, &out.CreatedAt, &out.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return booking.Booking{}, booking.ErrNotFound
		}
		return booking.Booking{}, err
	}

	return out, nil
}

func (repo *BookingsRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := repo.observe("bookings.delete", func() error {
		var err error
		tag, err = repo.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
		return err
	})

	if err != nil {
		if isInvalidText(err) {
			return booking.ErrNotFound
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return booking.ErrNotFound
	}

	return nil
}
