package favorites_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/mocks"
	"github.com/linhao/promptmaster/internal/port/favstore"
	"github.com/linhao/promptmaster/internal/service/favorites"
)

func newFavorites(t *testing.T, initial favstore.Mapping) (*favorites.Service, *mocks.MockFavStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockFavStore(ctrl)
	svc := favorites.NewService(store)
	if initial != nil {
		store.EXPECT().Load(gomock.Any()).Return(initial, nil)
		require.NoError(t, svc.Load(context.Background()))
	}
	return svc, store
}

func TestToggle_OnThenOff(t *testing.T) {
	svc, store := newFavorites(t, favstore.Mapping{})
	ctx := context.Background()

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	on, err := svc.Toggle(ctx, "alice", "7")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []prompt.ID{"7"}, svc.IDs("alice"))

	off, err := svc.Toggle(ctx, "alice", "7")
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, svc.IDs("alice"))
}

func TestToggle_RejectsGuests(t *testing.T) {
	svc, _ := newFavorites(t, favstore.Mapping{})

	_, err := svc.Toggle(context.Background(), "", "1")
	assert.ErrorIs(t, err, favorites.ErrNotLoggedIn)
	assert.Empty(t, svc.IDs(""))
}

func TestReplace_RejectsGuests(t *testing.T) {
	svc, _ := newFavorites(t, favstore.Mapping{})
	err := svc.Replace(context.Background(), "", []prompt.ID{"1"})
	assert.ErrorIs(t, err, favorites.ErrNotLoggedIn)
}

func TestToggle_NormalizesIDShapes(t *testing.T) {
	svc, store := newFavorites(t, favstore.Mapping{"bob": {"42"}})

	// The same record toggled via a numeric-looking id is a removal.
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	on, err := svc.Toggle(context.Background(), "bob", prompt.NormalizeID(42))
	require.NoError(t, err)
	assert.False(t, on)
}

func TestToggle_SaveFailureSurfaces(t *testing.T) {
	svc, store := newFavorites(t, favstore.Mapping{})
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Toggle(context.Background(), "alice", "1")
	assert.Error(t, err)
}

func TestMemberSet(t *testing.T) {
	svc, _ := newFavorites(t, favstore.Mapping{"alice": {"1", "2"}})

	set := svc.MemberSet("alice")
	assert.Len(t, set, 2)
	_, ok := set["1"]
	assert.True(t, ok)

	assert.Empty(t, svc.MemberSet("nobody"))
}

func TestReplace_DeduplicatesKeepingOrder(t *testing.T) {
	svc, store := newFavorites(t, favstore.Mapping{})
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Replace(context.Background(), "alice", []prompt.ID{"3", "1", "3", "2", "1"})
	require.NoError(t, err)
	assert.Equal(t, []prompt.ID{"3", "1", "2"}, svc.IDs("alice"))
}

func TestPrune(t *testing.T) {
	svc, store := newFavorites(t, favstore.Mapping{
		"alice": {"1", "2"},
		"bob":   {"2", "3"},
	})
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Prune(context.Background(), []prompt.ID{"2"}))
	assert.Equal(t, []prompt.ID{"1"}, svc.IDs("alice"))
	assert.Equal(t, []prompt.ID{"3"}, svc.IDs("bob"))
}

func TestPrune_NoChangeSkipsSave(t *testing.T) {
	svc, _ := newFavorites(t, favstore.Mapping{"alice": {"1"}})
	// No Save expectation: pruning ids nobody has must not hit the store.
	require.NoError(t, svc.Prune(context.Background(), []prompt.ID{"99"}))
	require.NoError(t, svc.Prune(context.Background(), nil))
}

func TestIDs_ReturnsACopy(t *testing.T) {
	svc, _ := newFavorites(t, favstore.Mapping{"alice": {"1", "2"}})

	ids := svc.IDs("alice")
	ids[0] = "tampered"
	assert.Equal(t, []prompt.ID{"1", "2"}, svc.IDs("alice"))
}
