package localfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/linhao/promptmaster/internal/port/favstore"
)

// FavoritesStore persists the whole username-to-ids mapping under its own
// key. Favorites stay on the local file regardless of which prompt backend is
// active, matching the source behavior.
type FavoritesStore struct {
	kv *KV
}

var _ favstore.Store = (*FavoritesStore)(nil)

func NewFavoritesStore(kv *KV) *FavoritesStore {
	return &FavoritesStore{kv: kv}
}

func (s *FavoritesStore) Load(_ context.Context) (favstore.Mapping, error) {
	m := favstore.Mapping{}
	err := s.kv.Get(KeyFavorites, &m)
	if errors.Is(err, ErrNoKey) {
		return favstore.Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	return m, nil
}

func (s *FavoritesStore) Save(_ context.Context, m favstore.Mapping) error {
	if err := s.kv.Put(KeyFavorites, m); err != nil {
		return fmt.Errorf("saving favorites: %w", err)
	}
	return nil
}
