package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// likeEscaper escapa los comodines de LIKE/ILIKE (el escape por defecto de PostgreSQL es '\').
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern construye el patrón '%texto%' con el texto escapado.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
