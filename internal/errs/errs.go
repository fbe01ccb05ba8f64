// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for API responses)
// so API clients receive meaningful and consistent error messages.
//
// Every failure a handler returns ends up as an *HTTPError, rendered by
// the global error handler as {code, message, mensaje, status, ...}.
package errs

// Messages surfaced verbatim by the favorites endpoints.
const (
	MsgFavoriteExists          = "Ya existe en favoritos"
	MsgFavoriteMissing         = "No existe este favorito"
	MsgPersonajeFavoriteRemove = "Personaje Favorito Eliminado"
	MsgPlanetaFavoriteRemove   = "Planeta Favorito Eliminado"
	MsgUserNotFound            = "No existe ningun usuario"
)

// Machine-readable codes shared by services and tests.
const (
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodePersonajeNotFound     = "PERSONAJE_NOT_FOUND"
	CodePlanetaNotFound       = "PLANETA_NOT_FOUND"
	CodeFavoritoAlreadyExists = "FAVORITO_ALREADY_EXISTS"
	CodeFavoritoNotFound      = "FAVORITO_NOT_FOUND"
)
