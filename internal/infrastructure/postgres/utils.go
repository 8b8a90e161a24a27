package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation detecta el choque con un índice único (email, sku,
// sale_number, ...). Los handlers lo traducen a 400 DUPLICATE.
func isUniqueViolation(err error) bool {
	return sqlState(err) == codeUniqueViolation
}

// isForeignKeyViolation detecta una referencia a una fila inexistente
// (customer_id, product_id, supplier_id).
func isForeignKeyViolation(err error) bool {
	return sqlState(err) == codeForeignKeyViolation
}
