// Package envadmin substitutes the user table in local storage mode: the only
// account is the admin configured through the environment. Registration is
// not supported in this mode.
package envadmin

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/linhao/promptmaster/internal/domain/user"
	"github.com/linhao/promptmaster/internal/port/userstore"
)

type Store struct {
	admin user.User
}

var _ userstore.Store = (*Store)(nil)

// New hashes the configured admin password once at startup. The plaintext is
// not retained.
func New(username, password string) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	return &Store{
		admin: user.User{
			ID:           0,
			Username:     username,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		},
	}, nil
}

func (s *Store) GetByUsername(_ context.Context, username string) (user.User, error) {
	if username != s.admin.Username {
		return user.User{}, userstore.ErrNotFound
	}
	return s.admin, nil
}

func (s *Store) Create(context.Context, user.User) (user.User, error) {
	return user.User{}, userstore.ErrNotSupported
}

func (s *Store) Count(context.Context) (int, error) {
	return 1, nil
}
