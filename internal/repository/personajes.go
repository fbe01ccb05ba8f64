package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/starwars-api/internal/model"
)

const personajeColumns = `p.id, p.nombre, p.altura, p.peso, p.color_cabello, p.color_piel, p.color_ojos, p.fecha_nacimiento, p.genero`

type PersonajeRepository struct {
	db Querier
}

func NewPersonajeRepository(db Querier) *PersonajeRepository {
	return &PersonajeRepository{db: db}
}

func personajeFields(p *model.Personaje) []any {
	return []any{
		&p.ID, &p.Nombre, &p.Altura, &p.Peso, &p.ColorCabello,
		&p.ColorPiel, &p.ColorOjos, &p.FechaNacimiento, &p.Genero,
	}
}

func scanPersonaje(row rowScanner) (model.Personaje, error) {
	var p model.Personaje
	err := row.Scan(personajeFields(&p)...)
	return p, err
}

// List returns every character ordered by id.
func (r *PersonajeRepository) List(ctx context.Context) ([]model.Personaje, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+personajeColumns+` FROM personaje p ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list personajes: %w", err)
	}
	return collect(rows, scanPersonaje)
}

func (r *PersonajeRepository) GetByID(ctx context.Context, id int64) (*model.Personaje, error) {
	return r.getOne(ctx, `SELECT `+personajeColumns+` FROM personaje p WHERE p.id = $1`, id)
}

func (r *PersonajeRepository) GetByNombre(ctx context.Context, nombre string) (*model.Personaje, error) {
	return r.getOne(ctx, `SELECT `+personajeColumns+` FROM personaje p WHERE p.nombre = $1`, nombre)
}

func (r *PersonajeRepository) getOne(ctx context.Context, query string, arg any) (*model.Personaje, error) {
	p, err := scanPersonaje(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("personaje", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personaje: %w", err)
	}
	return &p, nil
}

// Create inserts p and sets its generated id.
func (r *PersonajeRepository) Create(ctx context.Context, p *model.Personaje) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO personaje (nombre, altura, peso, color_cabello, color_piel, color_ojos, fecha_nacimiento, genero)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.Nombre, p.Altura, p.Peso, p.ColorCabello, p.ColorPiel, p.ColorOjos, p.FechaNacimiento, p.Genero,
	)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to create personaje: %w", err)
	}
	return nil
}

// FavoritoPersonajeRepository stores favorito_personaje rows. Reads embed
// the referenced character.
type FavoritoPersonajeRepository struct {
	db Querier
}

func NewFavoritoPersonajeRepository(db Querier) *FavoritoPersonajeRepository {
	return &FavoritoPersonajeRepository{db: db}
}

const favoritoPersonajeSelect = `
	SELECT f.id, f.user_id, f.personaje_id, ` + personajeColumns + `
	FROM favorito_personaje f
	JOIN personaje p ON p.id = f.personaje_id`

func scanFavoritoPersonaje(row rowScanner) (model.FavoritoPersonaje, error) {
	var f model.FavoritoPersonaje
	dest := append([]any{&f.ID, &f.UserID, &f.PersonajeID}, personajeFields(&f.Personaje)...)
	err := row.Scan(dest...)
	return f, err
}

// List returns the favorites of every user ordered by id.
func (r *FavoritoPersonajeRepository) List(ctx context.Context) ([]model.FavoritoPersonaje, error) {
	rows, err := r.db.QueryContext(ctx, favoritoPersonajeSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorito_personaje: %w", err)
	}
	return collect(rows, scanFavoritoPersonaje)
}

// ListByUser returns the favorites of one user ordered by id.
func (r *FavoritoPersonajeRepository) ListByUser(ctx context.Context, userID int64) ([]model.FavoritoPersonaje, error) {
	rows, err := r.db.QueryContext(ctx, favoritoPersonajeSelect+` WHERE f.user_id = $1 ORDER BY f.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorito_personaje of user %d: %w", userID, err)
	}
	return collect(rows, scanFavoritoPersonaje)
}

func (r *FavoritoPersonajeRepository) GetByID(ctx context.Context, id int64) (*model.FavoritoPersonaje, error) {
	f, err := scanFavoritoPersonaje(r.db.QueryRowContext(ctx, favoritoPersonajeSelect+` WHERE f.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("favorito_personaje", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorito_personaje %d: %w", id, err)
	}
	return &f, nil
}

// Exists reports whether userID already has personajeID among its favorites.
func (r *FavoritoPersonajeRepository) Exists(ctx context.Context, userID, personajeID int64) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorito_personaje WHERE user_id = $1 AND personaje_id = $2`,
		userID, personajeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up favorito_personaje: %w", err)
	}
	return count > 0, nil
}

// Create inserts the (userID, personajeID) pair and returns the stored row.
//
// A duplicate pair fails with a unique violation, an unknown character
// with a foreign key violation; both come back as driver errors.
func (r *FavoritoPersonajeRepository) Create(ctx context.Context, userID, personajeID int64) (*model.FavoritoPersonaje, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO favorito_personaje (user_id, personaje_id) VALUES ($1, $2) RETURNING id`,
		userID, personajeID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorito_personaje: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the pair and reports whether a row was deleted.
func (r *FavoritoPersonajeRepository) Delete(ctx context.Context, userID, personajeID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorito_personaje WHERE user_id = $1 AND personaje_id = $2`,
		userID, personajeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorito_personaje: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete favorito_personaje: %w", err)
	}
	return n > 0, nil
}
