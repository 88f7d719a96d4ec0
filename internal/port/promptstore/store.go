package promptstore

import (
	"context"
	"errors"

	"github.com/linhao/promptmaster/internal/domain/prompt"
)

var (
	// ErrNotFound reports that an update or lookup target id does not exist.
	ErrNotFound = errors.New("promptstore: not found")
	// ErrUnavailable reports that the remote backend is selected but its
	// endpoint is not configured or not reachable.
	ErrUnavailable = errors.New("promptstore: backend unavailable")
)

// ImportError is one failed item of a batch import. The batch itself still
// succeeds for the remaining items.
type ImportError struct {
	Title string `json:"prompt"`
	Err   string `json:"error"`
}

// Store is the storage abstraction for the prompt collection.
// The local (write-through JSON) and remote (HTTP endpoints over a relational
// table) implementations are interchangeable; callers never branch on which
// one they hold.
type Store interface {
	// GetAll returns the full collection. The local implementation never
	// fails and returns the seed list when nothing is persisted; the remote
	// implementation returns ErrUnavailable when unconfigured.
	GetAll(ctx context.Context) ([]prompt.Record, error)

	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id prompt.ID) (prompt.Record, error)

	// Create assigns the id and createdAt. ownerID associates the record
	// with an authenticated user where the backend tracks ownership; nil
	// means anonymous.
	Create(ctx context.Context, fields prompt.Fields, ownerID *int64) (prompt.Record, error)

	// Update applies only the set fields. An empty patch is a successful
	// no-op. Returns false when the id does not exist.
	Update(ctx context.Context, id prompt.ID, patch prompt.Patch) (bool, error)

	// DeleteMany removes every existing id among ids and reports how many
	// records were actually removed; absent ids are silently ignored.
	DeleteMany(ctx context.Context, ids []prompt.ID) (int, error)

	// Import inserts a batch, assigning fresh ids and createdAt to every
	// item. Per-item failures are collected, not fatal.
	Import(ctx context.Context, items []prompt.Fields, ownerID *int64) (int, []ImportError, error)

	// Initialize seeds an empty backend with the given records.
	Initialize(ctx context.Context, seed []prompt.Record) error
}
