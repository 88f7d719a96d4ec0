package userstore

import (
	"context"
	"errors"

	"github.com/linhao/promptmaster/internal/domain/user"
)

var (
	ErrNotFound = errors.New("userstore: not found")
	// ErrNotSupported reports that the active backend has no mutable user
	// table (local mode knows only the environment-configured admin).
	ErrNotSupported = errors.New("userstore: not supported in this storage mode")
	ErrDuplicate    = errors.New("userstore: username already taken")
)

// Store is the account storage abstraction. The remote implementation is a
// relational table; local mode substitutes a single admin account read from
// the environment.
type Store interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Count(ctx context.Context) (int, error)
}
