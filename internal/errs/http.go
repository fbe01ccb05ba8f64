package errs

import (
	"encoding/json"
	"strings"
)

// FieldError represents a field-level validation error (typical for forms).
// Example:
//
//	{ "field": "email", "error": "invalid email format" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It is serialized directly to JSON. The human message is emitted twice,
// as "message" and as "mensaje", so clients written against either key
// keep working.
// Fields:
//   - Code: machine-friendly error code (e.g. "PERSONAJE_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: flag to let middleware decide whether to override the message.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors"`
}

// MarshalJSON adds the "mensaje" key next to "message".
func (e *HTTPError) MarshalJSON() ([]byte, error) {
	type alias HTTPError
	return json.Marshal(struct {
		*alias
		Mensaje string `json:"mensaje"`
	}{
		alias:   (*alias)(e),
		Mensaje: e.Message,
	})
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
