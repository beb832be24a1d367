package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

var (
	ErrDuplicate             = errors.New("duplicate natural key")
	ErrReferenceNotFound     = errors.New("referenced record does not exist")
	ErrSubgenreGenreMismatch = errors.New("subgenre does not belong to genre")
	ErrInvalid               = errors.New("constraint violated")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver constraint failures from either dialect onto
// the package sentinels. Anything else is returned untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrInvalidBook) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", ErrInvalid, pgErr.ConstraintName)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %s", ErrDuplicate, liteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, liteErr.Error())
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %s", ErrInvalid, liteErr.Error())
		}
	}

	return err
}
