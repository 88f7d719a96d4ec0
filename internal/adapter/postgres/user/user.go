// Package user implements userstore.Store on the relational users table,
// used when the remote backend is active.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainuser "github.com/linhao/promptmaster/internal/domain/user"
	"github.com/linhao/promptmaster/internal/port/userstore"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ userstore.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetByUsername(ctx context.Context, username string) (domainuser.User, error) {
	query := `SELECT id, username, password_hash, role, avatar, email FROM users WHERE username = $1`
	var u domainuser.User
	err := s.pool.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Avatar, &u.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.User{}, userstore.ErrNotFound
		}
		return domainuser.User{}, fmt.Errorf("querying user %s: %w", username, err)
	}
	return u, nil
}

// Create inserts a user, relying on the username unique constraint to reject
// duplicates without a read-then-write race.
func (s *Store) Create(ctx context.Context, u domainuser.User) (domainuser.User, error) {
	query := `
		INSERT INTO users (username, password_hash, role, avatar, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id`

	err := s.pool.QueryRow(ctx, query, u.Username, u.PasswordHash, u.Role, u.Avatar, u.Email).Scan(&u.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.User{}, userstore.ErrDuplicate
		}
		return domainuser.User{}, fmt.Errorf("inserting user %s: %w", u.Username, err)
	}
	return u, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
