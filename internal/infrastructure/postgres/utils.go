package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// escapeLike escapa los metacaracteres de LIKE/ILIKE para que el término se
// busque literal: `\` primero, luego `%` y `_`. Las consultas que lo usan
// deben declarar ESCAPE '\'.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// likePattern construye el patrón de substring case-insensitive para ILIKE.
func likePattern(term string) string {
	return "%" + escapeLike(strings.TrimSpace(term)) + "%"
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503),
// típica de variant_id/warehouse_id que no resuelven.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}
