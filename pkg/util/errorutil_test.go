package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Passthrough(t *testing.T) {
	original := NewConflict("account already registered", nil)

	mapped := ToDomainError(original)
	require.Equal(t, "CONFLICT", mapped.Code)
	require.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainError_NoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", mapped.Code)
}

func TestToDomainError_Unknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestAuthErrorsShareStatusNotMessage(t *testing.T) {
	unauth := ToDomainError(NewUnauthenticated())
	invalid := ToDomainError(NewInvalidCredentials())
	forbidden := ToDomainError(NewForbidden("not enough permission"))

	require.Equal(t, http.StatusUnauthorized, unauth.HTTPStatus)
	require.Equal(t, http.StatusUnauthorized, invalid.HTTPStatus)
	require.NotEqual(t, unauth.Message, invalid.Message)
	require.Equal(t, http.StatusForbidden, forbidden.HTTPStatus)
}
