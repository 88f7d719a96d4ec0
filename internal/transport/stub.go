package transport

import (
	"context"

	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

// unavailableStore backs the /api/prompts routes in local mode. The RemoteOnly
// guard aborts before any handler runs, so these methods are unreachable; they
// still answer sensibly if ever called directly.
type unavailableStore struct{}

var _ promptstore.Store = unavailableStore{}

func (unavailableStore) GetAll(context.Context) ([]prompt.Record, error) {
	return nil, promptstore.ErrUnavailable
}

func (unavailableStore) GetByID(context.Context, prompt.ID) (prompt.Record, error) {
	return prompt.Record{}, promptstore.ErrUnavailable
}

func (unavailableStore) Create(context.Context, prompt.Fields, *int64) (prompt.Record, error) {
	return prompt.Record{}, promptstore.ErrUnavailable
}

func (unavailableStore) Update(context.Context, prompt.ID, prompt.Patch) (bool, error) {
	return false, promptstore.ErrUnavailable
}

func (unavailableStore) DeleteMany(context.Context, []prompt.ID) (int, error) {
	return 0, promptstore.ErrUnavailable
}

func (unavailableStore) Import(context.Context, []prompt.Fields, *int64) (int, []promptstore.ImportError, error) {
	return 0, nil, promptstore.ErrUnavailable
}

func (unavailableStore) Initialize(context.Context, []prompt.Record) error {
	return promptstore.ErrUnavailable
}
