package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/starwars-api/internal/model"
)

const userColumns = `id, email, password, is_active`

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive)
	return u, err
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return collect(rows, scanUser)
}

// First returns the user with the lowest id.
func (r *UserRepository) First(ctx context.Context) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id LIMIT 1`)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", email, err)
	}
	return &u, nil
}

// Create inserts u and sets its generated id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO "user" (email, password, is_active) VALUES ($1, $2, $3) RETURNING id`,
		u.Email, u.Password, u.IsActive,
	)
	if err := row.Scan(&u.ID); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
