package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"invalid credential", InvalidCredential("wrong"), http.StatusBadRequest},
		{"conflict", Conflict("taken"), http.StatusConflict},
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"unavailable", Unavailable("off"), http.StatusServiceUnavailable},
		{"internal", Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", Conflict("taken")), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessageHidesInternalCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal("failed to fetch stores", cause)

	assert.Equal(t, internalMessage, Message(err))
	assert.Equal(t, internalMessage, Message(cause))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessageAndDetails(t *testing.T) {
	err := NotFound("No store found for this owner").With("action", "CREATE_STORE")

	assert.Equal(t, "No store found for this owner", Message(err))
	assert.Equal(t, map[string]string{"action": "CREATE_STORE"}, Details(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Nil(t, Details(errors.New("x")))
}
