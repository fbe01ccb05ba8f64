// Package model holds the records stored by the API and their JSON shape.
//
// Field and key names are Spanish because they are part of the wire contract.
package model

// User is the owner of favorites. Password is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsActive bool   `json:"-"`
}

// Planeta is read-only reference data.
type Planeta struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Clima     *string `json:"clima"`
	Poblacion *int64  `json:"poblacion"`
	Terreno   *string `json:"terreno"`
	Diametro  *int64  `json:"diametro"`
}

// Personaje is read-only reference data.
type Personaje struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	Altura          *int64  `json:"altura"`
	Peso            *int64  `json:"peso"`
	ColorCabello    *string `json:"color_cabello"`
	ColorPiel       *string `json:"color_piel"`
	ColorOjos       *string `json:"color_ojos"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Genero          *string `json:"genero"`
}

// FavoritoPersonaje marks a character as liked by a user.
type FavoritoPersonaje struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	PersonajeID int64     `json:"personaje_id"`
	Personaje   Personaje `json:"personaje"`
}

// FavoritoPlaneta marks a planet as liked by a user.
type FavoritoPlaneta struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	PlanetaID int64   `json:"planeta_id"`
	Planeta   Planeta `json:"planeta"`
}

// Mensaje is the body of confirmation responses.
type Mensaje struct {
	Mensaje string `json:"mensaje"`
}
