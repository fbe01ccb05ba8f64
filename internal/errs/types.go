package errs

import (
	"net/http"
)

// New creates an HTTPError with the given status.
//
// A zero status defaults to 400, the status of a bare API error.
func New(message string, status int) *HTTPError {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message:  message,
		Status:   status,
		Override: true,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewConflictError reports an item that is already among the caller's favorites.
//
// Duplicates are answered with 400, not 409; existing clients expect it.
func NewConflictError() *HTTPError {
	code := CodeFavoritoAlreadyExists
	return NewBadRequestError(MsgFavoriteExists, true, &code, nil)
}

// NewFavoriteNotFoundError reports a delete of a favorite that does not exist.
func NewFavoriteNotFoundError() *HTTPError {
	code := CodeFavoritoNotFound
	return NewNotFoundError(MsgFavoriteMissing, true, &code)
}

// NewUserNotFoundError reports that the caller could not be resolved to a user.
func NewUserNotFoundError() *HTTPError {
	code := CodeUserNotFound
	return NewNotFoundError(MsgUserNotFound, true, &code)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: http.StatusText(http.StatusMethodNotAllowed),
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
