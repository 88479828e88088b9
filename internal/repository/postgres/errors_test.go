package postgres

import (
	"errors"
	"net"
	"testing"

	"go-talent-tracking/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateWriteError(t *testing.T) {
	t.Run("unique violation becomes the duplicate email conflict", func(t *testing.T) {
		err := translateWriteError(&pgconn.PgError{Code: pgUniqueViolation})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		assert.EqualError(t, err, "The email already exists in the database")
	})

	t.Run("other database error codes pass through unmodified", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", Message: "fk violation"}
		assert.Equal(t, error(pgErr), translateWriteError(pgErr))
	})

	t.Run("unreachable database becomes the connectivity message", func(t *testing.T) {
		netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		err := translateWriteError(netErr)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 503, appErr.Code)
		assert.EqualError(t, err, "No se pudo conectar con la base de datos. Por favor, asegúrese de que el servidor de base de datos esté en ejecución.")
	})

	t.Run("unclassified errors pass through unmodified", func(t *testing.T) {
		plain := errors.New("something else")
		assert.Equal(t, plain, translateWriteError(plain))
	})
}

func TestIsConnectivityError(t *testing.T) {
	assert.True(t, isConnectivityError(&pgconn.ConnectError{}))
	assert.True(t, isConnectivityError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}))
	assert.False(t, isConnectivityError(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isConnectivityError(errors.New("plain")))
}

func TestNullIfEmpty(t *testing.T) {
	// Empty means "omitted from the edit payload": the parameter must be NULL
	// so COALESCE keeps the stored value instead of blanking it.
	assert.Nil(t, nullIfEmpty(""))

	got := nullIfEmpty("Juan")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Juan", *got)
	}
}
