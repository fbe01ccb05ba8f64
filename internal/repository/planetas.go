package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/starwars-api/internal/model"
)

const planetaColumns = `p.id, p.nombre, p.clima, p.poblacion, p.terreno, p.diametro`

type PlanetaRepository struct {
	db Querier
}

func NewPlanetaRepository(db Querier) *PlanetaRepository {
	return &PlanetaRepository{db: db}
}

func planetaFields(p *model.Planeta) []any {
	return []any{&p.ID, &p.Nombre, &p.Clima, &p.Poblacion, &p.Terreno, &p.Diametro}
}

func scanPlaneta(row rowScanner) (model.Planeta, error) {
	var p model.Planeta
	err := row.Scan(planetaFields(&p)...)
	return p, err
}

// List returns every planet ordered by id.
func (r *PlanetaRepository) List(ctx context.Context) ([]model.Planeta, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planetaColumns+` FROM planeta p ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list planetas: %w", err)
	}
	return collect(rows, scanPlaneta)
}

func (r *PlanetaRepository) GetByID(ctx context.Context, id int64) (*model.Planeta, error) {
	return r.getOne(ctx, `SELECT `+planetaColumns+` FROM planeta p WHERE p.id = $1`, id)
}

func (r *PlanetaRepository) GetByNombre(ctx context.Context, nombre string) (*model.Planeta, error) {
	return r.getOne(ctx, `SELECT `+planetaColumns+` FROM planeta p WHERE p.nombre = $1`, nombre)
}

func (r *PlanetaRepository) getOne(ctx context.Context, query string, arg any) (*model.Planeta, error) {
	p, err := scanPlaneta(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("planeta", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get planeta: %w", err)
	}
	return &p, nil
}

// Create inserts p and sets its generated id.
func (r *PlanetaRepository) Create(ctx context.Context, p *model.Planeta) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO planeta (nombre, clima, poblacion, terreno, diametro)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Nombre, p.Clima, p.Poblacion, p.Terreno, p.Diametro,
	)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to create planeta: %w", err)
	}
	return nil
}

// FavoritoPlanetaRepository stores favorito_planeta rows. Reads embed the
// referenced planet.
type FavoritoPlanetaRepository struct {
	db Querier
}

func NewFavoritoPlanetaRepository(db Querier) *FavoritoPlanetaRepository {
	return &FavoritoPlanetaRepository{db: db}
}

const favoritoPlanetaSelect = `
	SELECT f.id, f.user_id, f.planeta_id, ` + planetaColumns + `
	FROM favorito_planeta f
	JOIN planeta p ON p.id = f.planeta_id`

func scanFavoritoPlaneta(row rowScanner) (model.FavoritoPlaneta, error) {
	var f model.FavoritoPlaneta
	dest := append([]any{&f.ID, &f.UserID, &f.PlanetaID}, planetaFields(&f.Planeta)...)
	err := row.Scan(dest...)
	return f, err
}

// List returns the favorites of every user ordered by id.
func (r *FavoritoPlanetaRepository) List(ctx context.Context) ([]model.FavoritoPlaneta, error) {
	rows, err := r.db.QueryContext(ctx, favoritoPlanetaSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorito_planeta: %w", err)
	}
	return collect(rows, scanFavoritoPlaneta)
}

// ListByUser returns the favorites of one user ordered by id.
func (r *FavoritoPlanetaRepository) ListByUser(ctx context.Context, userID int64) ([]model.FavoritoPlaneta, error) {
	rows, err := r.db.QueryContext(ctx, favoritoPlanetaSelect+` WHERE f.user_id = $1 ORDER BY f.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorito_planeta of user %d: %w", userID, err)
	}
	return collect(rows, scanFavoritoPlaneta)
}

func (r *FavoritoPlanetaRepository) GetByID(ctx context.Context, id int64) (*model.FavoritoPlaneta, error) {
	f, err := scanFavoritoPlaneta(r.db.QueryRowContext(ctx, favoritoPlanetaSelect+` WHERE f.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("favorito_planeta", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorito_planeta %d: %w", id, err)
	}
	return &f, nil
}

// Exists reports whether userID already has planetaID among its favorites.
func (r *FavoritoPlanetaRepository) Exists(ctx context.Context, userID, planetaID int64) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorito_planeta WHERE user_id = $1 AND planeta_id = $2`,
		userID, planetaID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up favorito_planeta: %w", err)
	}
	return count > 0, nil
}

// Create inserts the (userID, planetaID) pair and returns the stored row.
func (r *FavoritoPlanetaRepository) Create(ctx context.Context, userID, planetaID int64) (*model.FavoritoPlaneta, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO favorito_planeta (user_id, planeta_id) VALUES ($1, $2) RETURNING id`,
		userID, planetaID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorito_planeta: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the pair and reports whether a row was deleted.
func (r *FavoritoPlanetaRepository) Delete(ctx context.Context, userID, planetaID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorito_planeta WHERE user_id = $1 AND planeta_id = $2`,
		userID, planetaID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorito_planeta: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete favorito_planeta: %w", err)
	}
	return n > 0, nil
}
