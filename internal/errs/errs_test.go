package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(NewConflictError())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, MsgFavoriteExists, got["message"])
	assert.Equal(t, MsgFavoriteExists, got["mensaje"])
	assert.Equal(t, CodeFavoritoAlreadyExists, got["code"])
	assert.EqualValues(t, http.StatusBadRequest, got["status"])
	assert.Equal(t, true, got["override"])
	assert.NotContains(t, got, "action")
}

func TestNew(t *testing.T) {
	t.Run("zero status defaults to bad request", func(t *testing.T) {
		err := New("nope", 0)
		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "BAD_REQUEST", err.Code)
		assert.True(t, err.Override)
	})

	t.Run("explicit status", func(t *testing.T) {
		err := New("slow down", http.StatusTooManyRequests)
		assert.Equal(t, http.StatusTooManyRequests, err.Status)
		assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
		assert.Equal(t, "slow down", err.Error())
	})
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *HTTPError
		status  int
		code    string
		message string
	}{
		{"favorite not found", NewFavoriteNotFoundError(), http.StatusNotFound, CodeFavoritoNotFound, MsgFavoriteMissing},
		{"user not found", NewUserNotFoundError(), http.StatusNotFound, CodeUserNotFound, MsgUserNotFound},
		{"conflict", NewConflictError(), http.StatusBadRequest, CodeFavoritoAlreadyExists, MsgFavoriteExists},
		{"method not allowed", NewMethodNotAllowedError(), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method Not Allowed"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestHTTPError_Is(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Same(t, base, httpErr)
	assert.Equal(t, "Resource not found", httpErr.Error())
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)))
}
