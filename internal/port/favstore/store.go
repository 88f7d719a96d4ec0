package favstore

import (
	"context"

	"github.com/linhao/promptmaster/internal/domain/prompt"
)

// Mapping is the persisted favorites ledger: username to favorited prompt
// ids, string-normalized.
type Mapping map[string][]prompt.ID

// Store persists the entire per-user mapping as one unit, under its own
// storage key so clearing prompts or config never touches favorites.
type Store interface {
	Load(ctx context.Context) (Mapping, error)
	Save(ctx context.Context, m Mapping) error
}
