package handler

import (
	"github.com/deppfellow/starwars-api/internal/validation"
)

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries the numeric id from the route path. A non-integer or
// non-positive id never matches a row and is answered with 404.
type IDRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}
