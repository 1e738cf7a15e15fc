package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation = "23505"
	codeInvalidText     = "22P02"

	constraintEventsSlug = "events_slug_uniq"
)

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return true
	}
	return false
}

func isConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError

	return IsUniqueViolation(err) && errors.As(err, &pgErr) && pgErr.ConstraintName == name
}

// invalid uuid text in a WHERE clause; for point reads this just means "no such row"
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidText
}
