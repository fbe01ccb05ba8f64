package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/errs"
)

type pathRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *pathRequest) Validate() error {
	return Struct(r)
}

type bodyRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (r *bodyRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "nombre", Message: "already taken"}}
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_PathParams(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		status int
	}{
		{name: "not a number", value: "abc", status: http.StatusNotFound},
		{name: "zero", value: "0", status: http.StatusNotFound},
		{name: "negative", value: "-1", status: http.StatusNotFound},
		{name: "overflow", value: "99999999999999999999", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodGet, "/personaje/"+tt.value, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			httpErr := requireHTTPError(t, BindAndValidate(c, &pathRequest{}), tt.status)
			assert.Equal(t, "Resource not found", httpErr.Message)
		})
	}

	t.Run("valid id", func(t *testing.T) {
		c := newContext(http.MethodPost, "/favoritos/personaje/7", "")
		c.SetParamNames("id")
		c.SetParamValues("7")

		req := &pathRequest{}
		require.NoError(t, BindAndValidate(c, req))
		assert.EqualValues(t, 7, req.ID)
	})
}

func TestBindAndValidate_Body(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"email":"luke@rebelalliance.org"}`)

		httpErr := requireHTTPError(t, BindAndValidate(c, &bodyRequest{}), http.StatusBadRequest)
		assert.Equal(t, "Validation failed", httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, errs.FieldError{Field: "name", Error: "is required"}, httpErr.Errors[0])
	})

	t.Run("invalid email", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"name":"Luke","email":"not-an-email"}`)

		httpErr := requireHTTPError(t, BindAndValidate(c, &bodyRequest{}), http.StatusBadRequest)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "must be a valid email address", httpErr.Errors[0].Error)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"name":`)

		requireHTTPError(t, BindAndValidate(c, &bodyRequest{}), http.StatusBadRequest)
	})

	t.Run("custom errors", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", "")

		httpErr := requireHTTPError(t, BindAndValidate(c, &customRequest{}), http.StatusBadRequest)
		assert.Equal(t, []errs.FieldError{{Field: "nombre", Error: "already taken"}}, httpErr.Errors)
	})
}
