package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// La detección debe funcionar también con el PgError envuelto, que es como
// llega desde las capas de pgx.
func TestIsUniqueViolation_DetectaSQLSTATE23505(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_login_key"}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", dup)))
}

func TestIsUniqueViolation_IgnoraOtrosErrores(t *testing.T) {
	assert.False(t, isUniqueViolation(fmt.Errorf("connection refused")))
	// Otro SQLSTATE (not_null_violation) no debe mapearse a duplicado.
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23502"}))
}
