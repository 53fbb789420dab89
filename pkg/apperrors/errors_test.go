package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Wrap(ErrValidation, "bad input"), http.StatusBadRequest},
		{"unauthorized", Wrap(ErrUnauthorized, "invalid credentials"), http.StatusUnauthorized},
		{"forbidden", Wrap(ErrForbidden, "account suspended"), http.StatusForbidden},
		{"not found", Wrap(ErrNotFound, "property not found"), http.StatusNotFound},
		{"conflict", Wrap(ErrConflict, "email already in use"), http.StatusConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "42601"}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}

func TestWrap_KeepsSentinelAndMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "property %s not found", "abc")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "property abc not found")
}
