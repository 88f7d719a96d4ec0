//go:build integration

package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pguser "github.com/linhao/promptmaster/internal/adapter/postgres/user"
	domainuser "github.com/linhao/promptmaster/internal/domain/user"
	"github.com/linhao/promptmaster/internal/port/userstore"
	"github.com/linhao/promptmaster/internal/testutil"
)

func newStore(t *testing.T) (*pguser.Store, context.Context) {
	t.Helper()
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, "TRUNCATE users RESTART IDENTITY")
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(ctx, "TRUNCATE users RESTART IDENTITY")
	})

	return pguser.New(pool), ctx
}

func TestCreateAndGet(t *testing.T) {
	store, ctx := newStore(t)

	created, err := store.Create(ctx, domainuser.User{
		Username:     "alice",
		PasswordHash: "$2a$10$fakehash",
		Role:         domainuser.RoleUser,
		Email:        "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := store.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domainuser.RoleUser, got.Role)
	assert.Equal(t, "$2a$10$fakehash", got.PasswordHash)
}

func TestGetByUsername_Missing(t *testing.T) {
	store, ctx := newStore(t)
	_, err := store.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, userstore.ErrNotFound)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	store, ctx := newStore(t)

	_, err := store.Create(ctx, domainuser.User{Username: "bob", PasswordHash: "h", Role: domainuser.RoleUser})
	require.NoError(t, err)

	_, err = store.Create(ctx, domainuser.User{Username: "bob", PasswordHash: "h2", Role: domainuser.RoleUser})
	assert.ErrorIs(t, err, userstore.ErrDuplicate)
}

func TestCount(t *testing.T) {
	store, ctx := newStore(t)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Create(ctx, domainuser.User{Username: "carol", PasswordHash: "h", Role: domainuser.RoleUser})
	require.NoError(t, err)

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
