package postgres

import (
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// Client-facing persistence failure messages. These are part of the public
// API contract and must keep their exact wording.
const (
	msgDuplicateEmail   = "The email already exists in the database"
	msgCandidateMissing = "No se pudo encontrar el registro del candidato con el ID proporcionado."
	msgDatabaseDown     = "No se pudo conectar con la base de datos. Por favor, asegúrese de que el servidor de base de datos esté en ejecución."
)

// isConnectivityError reports whether err means the database could not be
// reached at all, as opposed to an error the database itself returned.
func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
