package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation código SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// mapPgError traduce un error del driver al dominio: una violación de
// constraint único se convierte en el centinela de duplicado del agregado
// (duplicate); cualquier otro error se envuelve con la operación que falló.
func mapPgError(err error, op string, duplicate error) error {
	var pgErr *pgconn.PgError
	if duplicate != nil && errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return duplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}
