// Package library holds the prompt collection in memory and keeps it in sync
// with whichever storage backend is active.
// [SRP] Collection lifecycle and mutation only; filtering lives in domain/query.
// [DIP] Depends on the promptstore port, not on any concrete backend.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/linhao/promptmaster/internal/domain/event"
	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/domain/query"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

// Notifier receives library change events. The websocket hub satisfies it.
type Notifier interface {
	Broadcast(event any)
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(any) {}

type Service struct {
	store    promptstore.Store
	debounce *Debouncer

	mu      sync.RWMutex
	records []prompt.Record
}

func NewService(store promptstore.Store, notifier Notifier) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	s := &Service{store: store}
	s.debounce = NewDebouncer(debounceInterval, func() {
		notifier.Broadcast(event.New(event.TypeLibraryChanged))
	})
	return s
}

// Load populates the in-memory collection from storage. An empty backend is
// seeded first; a failing backend degrades to the built-in seed list so the
// library stays readable.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		slog.Error("prompt storage unavailable, serving built-in prompts", "error", err)
		s.replace(prompt.SeedCopy())
		return fmt.Errorf("loading prompt collection: %w", err)
	}

	if len(records) == 0 {
		if err := s.store.Initialize(ctx, prompt.SeedCopy()); err != nil {
			slog.Error("seeding prompt storage failed, serving built-in prompts", "error", err)
			s.replace(prompt.SeedCopy())
			return fmt.Errorf("seeding prompt collection: %w", err)
		}
		if records, err = s.store.GetAll(ctx); err != nil {
			s.replace(prompt.SeedCopy())
			return fmt.Errorf("reloading seeded collection: %w", err)
		}
	}

	s.replace(records)
	return nil
}

// Refresh re-reads the collection from storage and notifies listeners.
func (s *Service) Refresh(ctx context.Context) error {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("refreshing prompt collection: %w", err)
	}
	s.replace(records)
	s.debounce.Trigger()
	return nil
}

func (s *Service) replace(records []prompt.Record) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Snapshot returns a copy of the collection for callers that iterate without
// holding the lock.
func (s *Service) Snapshot() []prompt.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]prompt.Record, len(s.records))
	copy(out, s.records)
	return out
}

// View runs the filter, sort and pagination pipeline over the current
// collection. favorites feeds both the "custom" category and the sidebar
// counts.
func (s *Service) View(criteria query.Criteria, favorites map[prompt.ID]struct{}) query.Result {
	return query.Apply(s.Snapshot(), criteria, favorites)
}

// Get returns a single record from the in-memory collection.
func (s *Service) Get(id prompt.ID) (prompt.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := prompt.NormalizeID(id)
	for _, r := range s.records {
		if prompt.NormalizeID(r.ID) == want {
			return r, true
		}
	}
	return prompt.Record{}, false
}

// Create validates and persists a new record, then prepends the confirmed
// record to the collection.
func (s *Service) Create(ctx context.Context, fields prompt.Fields, ownerID *int64) (prompt.Record, error) {
	if err := fields.Validate(); err != nil {
		return prompt.Record{}, err
	}

	rec, err := s.store.Create(ctx, fields, ownerID)
	if err != nil {
		return prompt.Record{}, fmt.Errorf("creating prompt: %w", err)
	}

	s.mu.Lock()
	s.records = append([]prompt.Record{rec}, s.records...)
	s.mu.Unlock()

	s.debounce.Trigger()
	return rec, nil
}

// Update applies a partial update in storage, then re-reads the record so the
// collection carries whatever the backend actually stored.
func (s *Service) Update(ctx context.Context, id prompt.ID, patch prompt.Patch) (prompt.Record, error) {
	if err := patch.Validate(); err != nil {
		return prompt.Record{}, err
	}

	ok, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return prompt.Record{}, fmt.Errorf("updating prompt %s: %w", id, err)
	}
	if !ok {
		return prompt.Record{}, promptstore.ErrNotFound
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return prompt.Record{}, fmt.Errorf("rereading prompt %s: %w", id, err)
	}

	s.mu.Lock()
	want := prompt.NormalizeID(id)
	for i := range s.records {
		if prompt.NormalizeID(s.records[i].ID) == want {
			s.records[i] = rec
			break
		}
	}
	s.mu.Unlock()

	s.debounce.Trigger()
	return rec, nil
}

// Delete removes the given records from storage and the collection, reporting
// how many the backend actually removed. Absent ids shrink the count, they do
// not fail the call.
func (s *Service) Delete(ctx context.Context, ids []prompt.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("deleting prompts: %w", err)
	}

	drop := make(map[prompt.ID]struct{}, len(ids))
	for _, id := range ids {
		drop[prompt.NormalizeID(id)] = struct{}{}
	}

	s.mu.Lock()
	kept := s.records[:0]
	for _, r := range s.records {
		if _, gone := drop[prompt.NormalizeID(r.ID)]; !gone {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.mu.Unlock()

	s.debounce.Trigger()
	return removed, nil
}

// Import persists a batch, reporting per-item failures, then refreshes the
// collection so imported ids come from the backend.
func (s *Service) Import(ctx context.Context, items []prompt.Fields, ownerID *int64) (int, []promptstore.ImportError, error) {
	imported, itemErrs, err := s.store.Import(ctx, items, ownerID)
	if err != nil {
		return 0, itemErrs, fmt.Errorf("importing prompts: %w", err)
	}
	if imported > 0 {
		if err := s.Refresh(ctx); err != nil {
			return imported, itemErrs, err
		}
	}
	return imported, itemErrs, nil
}

// Export returns the full collection for download.
func (s *Service) Export() []prompt.Record {
	return s.Snapshot()
}

// Close cancels any pending change notification.
func (s *Service) Close() {
	s.debounce.Stop()
}
