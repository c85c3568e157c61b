package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/model"
)

type memUserStore struct {
	users []model.User
}

func (m *memUserStore) FindByCredentials(_ context.Context, username, password string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, apperr.ErrUnauthorized)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(&memUserStore{users: []model.User{
		{Username: "admin", Password: "admin123", Role: model.RoleAdministrator},
		{Username: "client_user", Password: "client123", Role: model.RoleStandardClient},
	}})
	ctx := context.Background()

	t.Run("matching credentials return the user", func(t *testing.T) {
		user, err := svc.Login(ctx, "admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdministrator, user.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost", "admin123")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}
