package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"not found", NewNotFound("reservation", nil), "NOT_FOUND", http.StatusNotFound},
		{"conflict", NewConflict("duplicate", nil), "CONFLICT", http.StatusConflict},
		{"store", NewStoreError(errors.New("disk full")), "STORE_ERROR", http.StatusInternalServerError},
		{"channel", NewChannelError(errors.New("broker down")), "CHANNEL_ERROR", http.StatusInternalServerError},
		{"unauthorized", NewUnauthorized("no token"), "UNAUTHORIZED", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			domainErr := ToDomainError(tc.err)
			require.Equal(t, tc.code, domainErr.Code)
			require.Equal(t, tc.status, domainErr.HTTPStatus)
		})
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	domainErr := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("surprise")
	domainErr := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	require.ErrorIs(t, domainErr, cause)
}

func TestPredicates(t *testing.T) {
	require.True(t, IsNotFound(NewNotFound("user", nil)))
	require.False(t, IsNotFound(NewValidationError("bad", nil)))
	require.True(t, IsValidation(NewValidationError("bad", nil)))
	require.False(t, IsValidation(errors.New("plain")))
}
