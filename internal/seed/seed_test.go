package seed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/seed"
	"github.com/deppfellow/starwars-api/internal/testinfra"
)

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	logger := zerolog.Nop()

	first, err := seed.Run(ctx, db.DB, &logger)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{
		Users:      len(seed.Users()),
		Personajes: len(seed.Personajes()),
		Planetas:   len(seed.Planetas()),
	}, first)

	second, err := seed.Run(ctx, db.DB, &logger)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, second)

	repos := repository.New(db.DB)

	personajes, err := repos.Personajes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, personajes, len(seed.Personajes()))

	luke, err := repos.Personajes.GetByNombre(ctx, "Luke Skywalker")
	require.NoError(t, err)
	require.NotNil(t, luke.ColorOjos)
	assert.Equal(t, "blue", *luke.ColorOjos)
}

func TestRun_KeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	logger := zerolog.Nop()

	testinfra.InsertPlaneta(t, db.DB, "Tatooine")

	result, err := seed.Run(ctx, db.DB, &logger)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Planetas())-1, result.Planetas)

	planetas, err := repository.New(db.DB).Planetas.List(ctx)
	require.NoError(t, err)
	assert.Len(t, planetas, len(seed.Planetas()))
}
