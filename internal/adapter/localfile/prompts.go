package localfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

// PromptStore implements promptstore.Store over the local KV entry. Reads
// never fail for the caller: a missing or empty entry resolves to the seed
// list, which is persisted on first touch. Every mutation rewrites the whole
// collection (write-through).
type PromptStore struct {
	kv *KV
	mu sync.Mutex
}

var _ promptstore.Store = (*PromptStore)(nil)

func NewPromptStore(kv *KV) *PromptStore {
	return &PromptStore{kv: kv}
}

// load returns the persisted collection, seeding it when absent or empty.
func (s *PromptStore) load() []prompt.Record {
	var records []prompt.Record
	err := s.kv.Get(KeyPrompts, &records)
	switch {
	case errors.Is(err, ErrNoKey), err == nil && len(records) == 0:
		records = prompt.SeedCopy()
		if werr := s.kv.Put(KeyPrompts, records); werr != nil {
			slog.Warn("seeding local prompt store failed", "error", werr)
		}
	case err != nil:
		slog.Error("local prompt store unreadable, serving seed data", "error", err)
		records = prompt.SeedCopy()
	}
	return records
}

func (s *PromptStore) save(records []prompt.Record) error {
	if err := s.kv.Put(KeyPrompts, records); err != nil {
		return fmt.Errorf("persisting prompt collection: %w", err)
	}
	return nil
}

func (s *PromptStore) GetAll(_ context.Context) ([]prompt.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *PromptStore) GetByID(_ context.Context, id prompt.ID) (prompt.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := prompt.NormalizeID(id)
	for _, r := range s.load() {
		if prompt.NormalizeID(r.ID) == want {
			return r, nil
		}
	}
	return prompt.Record{}, promptstore.ErrNotFound
}

func (s *PromptStore) Create(_ context.Context, fields prompt.Fields, _ *int64) (prompt.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := newLocalRecord(fields)
	records := append([]prompt.Record{rec}, s.load()...)
	if err := s.save(records); err != nil {
		return prompt.Record{}, err
	}
	return rec, nil
}

func (s *PromptStore) Update(_ context.Context, id prompt.ID, patch prompt.Patch) (bool, error) {
	if patch.Empty() {
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	want := prompt.NormalizeID(id)
	for i := range records {
		if prompt.NormalizeID(records[i].ID) != want {
			continue
		}
		patch.Apply(&records[i])
		if err := s.save(records); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, promptstore.ErrNotFound
}

func (s *PromptStore) DeleteMany(_ context.Context, ids []prompt.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[prompt.ID]struct{}, len(ids))
	for _, id := range ids {
		drop[prompt.NormalizeID(id)] = struct{}{}
	}

	records := s.load()
	kept := records[:0]
	for _, r := range records {
		if _, gone := drop[prompt.NormalizeID(r.ID)]; !gone {
			kept = append(kept, r)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *PromptStore) Import(_ context.Context, items []prompt.Fields, _ *int64) (int, []promptstore.ImportError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fresh []prompt.Record
	var itemErrs []promptstore.ImportError
	for _, f := range items {
		if err := f.Validate(); err != nil {
			itemErrs = append(itemErrs, promptstore.ImportError{Title: f.Title, Err: err.Error()})
			continue
		}
		fresh = append(fresh, newLocalRecord(f))
	}
	if len(fresh) == 0 {
		return 0, itemErrs, nil
	}

	records := append(fresh, s.load()...)
	if err := s.save(records); err != nil {
		return 0, itemErrs, err
	}
	return len(fresh), itemErrs, nil
}

// Initialize is a no-op: load already seeds an empty entry.
func (s *PromptStore) Initialize(context.Context, []prompt.Record) error {
	return nil
}

func newLocalRecord(f prompt.Fields) prompt.Record {
	now := time.Now()
	return prompt.Record{
		ID:         prompt.NewLocalID(now),
		Title:      f.Title,
		Desc:       f.Desc,
		Prompt:     f.Prompt,
		Category:   f.Category,
		Complexity: f.Complexity,
		Type:       f.Type,
		Icon:       f.Icon,
		Image:      f.Image,
		IsCustom:   true,
		CreatedAt:  now.UnixMilli(),
	}
}
