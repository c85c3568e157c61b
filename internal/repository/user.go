package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/model"
)

// UserRepository reads the seeded user accounts.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByCredentials returns the user matching username and password exactly.
// A missing row maps to apperr.ErrUnauthorized; no hashing is involved.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT username, password, role
		FROM users
		WHERE username = $1 AND password = $2`, username, password).Scan(
		&u.Username,
		&u.Password,
		&u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("find user: %w: %v", apperr.ErrMetadataStore, err)
	}
	return &u, nil
}
