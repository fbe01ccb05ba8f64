// Package seed loads a small sample data set for local development.
//
// The API itself never creates users, characters or planets; this is the
// external seeding step it expects. Running it twice is harmless: rows are
// matched by their unique email or nombre and only missing ones are inserted.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/repository"
)

// Result counts the rows inserted by Run.
type Result struct {
	Users      int
	Personajes int
	Planetas   int
}

// Run inserts the sample rows that are missing, in a single transaction.
func Run(ctx context.Context, db *sql.DB, logger *zerolog.Logger) (Result, error) {
	var result Result

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("starting seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := repository.New(tx)

	for _, u := range Users() {
		_, err := repos.Users.GetByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return result, err
		}
		if err := repos.Users.Create(ctx, &u); err != nil {
			return result, err
		}
		result.Users++
	}

	for _, p := range Personajes() {
		_, err := repos.Personajes.GetByNombre(ctx, p.Nombre)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return result, err
		}
		if err := repos.Personajes.Create(ctx, &p); err != nil {
			return result, err
		}
		result.Personajes++
	}

	for _, p := range Planetas() {
		_, err := repos.Planetas.GetByNombre(ctx, p.Nombre)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return result, err
		}
		if err := repos.Planetas.Create(ctx, &p); err != nil {
			return result, err
		}
		result.Planetas++
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("committing seed transaction: %w", err)
	}

	logger.Info().
		Int("users", result.Users).
		Int("personajes", result.Personajes).
		Int("planetas", result.Planetas).
		Msg("seeded sample data")

	return result, nil
}
