package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateSuggestion signals a second triage run against a ticket
// that already has a suggestion. Treated as a caller-logic defect,
// never merged silently.
var ErrDuplicateSuggestion = errors.New("suggestion already exists for ticket")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
