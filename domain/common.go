package domain

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	MessageFailedBodyRequest = "failed to process request body"

	ErrInvalidID           = errors.New("id must be a positive integer")
	ErrForeignKeyViolation = errors.New("referenced resource does not exist")
	ErrDuplicateResource   = errors.New("resource already exists")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// SQLSTATE values this backend cares about.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgConnectionClass     = "08"
)

// TranslateStorageError maps driver failures onto domain sentinels so raw
// driver text never reaches a client. Unclassified errors pass through and
// end up as a generic 500.
func TranslateStorageError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgForeignKeyViolation:
			return ErrForeignKeyViolation
		case pgErr.Code == pgUniqueViolation:
			return ErrDuplicateResource
		case strings.HasPrefix(pgErr.Code, pgConnectionClass):
			return ErrStorageUnavailable
		}
	}
	return err
}
