// Package favorites keeps each user's favorite prompt ids. The ledger always
// lives on the local file, whichever prompt backend is active.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/favstore"
)

// ErrNotLoggedIn rejects favorite mutations from unauthenticated callers.
// Guests may read the library but favorites are keyed by username.
var ErrNotLoggedIn = errors.New("favorites: sign in first")

type Service struct {
	store favstore.Store

	mu      sync.RWMutex
	mapping favstore.Mapping
}

func NewService(store favstore.Store) *Service {
	return &Service{store: store, mapping: favstore.Mapping{}}
}

// Load reads the persisted ledger. A missing ledger is an empty one.
func (s *Service) Load(ctx context.Context) error {
	m, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading favorites ledger: %w", err)
	}
	s.mu.Lock()
	s.mapping = m
	s.mu.Unlock()
	return nil
}

// IDs returns the user's favorites in toggle order. Unknown users, the guest
// included, have none.
func (s *Service) IDs(username string) []prompt.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.mapping[username]
	out := make([]prompt.ID, len(ids))
	copy(out, ids)
	return out
}

// MemberSet returns the user's favorites as a membership set, normalized for
// comparison against either backend's id shape.
func (s *Service) MemberSet(username string) map[prompt.ID]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[prompt.ID]struct{})
	for _, id := range s.mapping[username] {
		set[prompt.NormalizeID(id)] = struct{}{}
	}
	return set
}

// Toggle flips membership of id in the user's favorites and persists the
// whole ledger. It reports whether the id is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, username string, id prompt.ID) (bool, error) {
	if username == "" {
		return false, ErrNotLoggedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := prompt.NormalizeID(id)
	ids := s.mapping[username]

	removed := false
	kept := ids[:0]
	for _, existing := range ids {
		if prompt.NormalizeID(existing) == want {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	nowFavorite := !removed
	if nowFavorite {
		kept = append(kept, want)
	}
	s.mapping[username] = kept

	if err := s.store.Save(ctx, s.mapping); err != nil {
		return false, fmt.Errorf("persisting favorites ledger: %w", err)
	}
	return nowFavorite, nil
}

// Replace overwrites the user's entire favorites list, deduplicating while
// keeping first-seen order. Used to sync a client-kept list after login.
func (s *Service) Replace(ctx context.Context, username string, ids []prompt.ID) error {
	if username == "" {
		return ErrNotLoggedIn
	}

	seen := make(map[prompt.ID]struct{}, len(ids))
	deduped := make([]prompt.ID, 0, len(ids))
	for _, id := range ids {
		norm := prompt.NormalizeID(id)
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		deduped = append(deduped, norm)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapping[username] = deduped
	if err := s.store.Save(ctx, s.mapping); err != nil {
		return fmt.Errorf("persisting favorites ledger: %w", err)
	}
	return nil
}

// Prune drops the given prompt ids from every user's favorites, for use after
// prompts are deleted. Saves only when something changed.
func (s *Service) Prune(ctx context.Context, ids []prompt.ID) error {
	if len(ids) == 0 {
		return nil
	}

	drop := make(map[prompt.ID]struct{}, len(ids))
	for _, id := range ids {
		drop[prompt.NormalizeID(id)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for k, userIDs := range s.mapping {
		kept := userIDs[:0]
		for _, id := range userIDs {
			if _, gone := drop[prompt.NormalizeID(id)]; gone {
				changed = true
				continue
			}
			kept = append(kept, id)
		}
		s.mapping[k] = kept
	}
	if !changed {
		return nil
	}

	if err := s.store.Save(ctx, s.mapping); err != nil {
		return fmt.Errorf("persisting favorites ledger: %w", err)
	}
	return nil
}
