package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

const pgUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// wrapWrite envuelve un error de escritura; la violación de unicidad se traduce a domain.ErrDuplicate
// conservando el constraint para los logs.
func wrapWrite(op string, err error) error {
	if isUniqueViolation(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
