package service

import (
	"context"

	"github.com/logvault/logvault/internal/model"
)

// UserStore is the credential lookup surface.
type UserStore interface {
	FindByCredentials(ctx context.Context, username, password string) (*model.User, error)
}

// AuthService answers login requests against the seeded user table.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login returns the matching user or apperr.ErrUnauthorized. Exact string
// match on both fields; hardening is out of scope here.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	return s.users.FindByCredentials(ctx, username, password)
}
