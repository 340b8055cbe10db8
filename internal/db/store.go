package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ExistsByID reports whether a row with the id exists. table is always a
// package constant of the caller, never user input.
func ExistsByID(ctx context.Context, q Querier, table string, id int64) (bool, error) {
	var ok bool
	err := q.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id=$1)`, table), id).Scan(&ok)
	return ok, err
}

// DeleteByID removes the row, failing with NotFound when nothing was deleted.
func DeleteByID(ctx context.Context, q Querier, table, entity string, id int64) error {
	tag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, table), id)
	if err != nil {
		return Translate(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(entity, id)
	}
	return nil
}

// Translate maps driver errors onto apperr kinds: missing rows become
// NotFound for the entity, constraint violations become Integrity.
func Translate(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperr.Integrity(entity+" violates unique constraint "+pgErr.ConstraintName, err)
		case foreignKeyViolation:
			return apperr.Integrity(entity+" is still referenced or references a missing row", err)
		}
	}
	return err
}
