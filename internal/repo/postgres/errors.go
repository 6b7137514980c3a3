package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repos care about.
const (
	uniqueViolationCode           = "23505"
	foreignKeyViolationCode       = "23503"
	invalidTextRepresentationCode = "22P02"
)

func isUniqueViolation(err error) bool {
	return isPgCode(err, uniqueViolationCode)
}

func isForeignKeyViolation(err error) bool {
	return isPgCode(err, foreignKeyViolationCode)
}

// isRowMissing reports whether a lookup failed because the row does not
// exist. Ids travel in request bodies as plain strings, so a value that is
// not even UUID syntax (22P02) means the same thing as no matching row.
func isRowMissing(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || isPgCode(err, invalidTextRepresentationCode)
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
