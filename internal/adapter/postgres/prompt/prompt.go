// Package prompt implements promptstore.Store on the relational prompts
// table. This is the storage that actually backs the /api/prompts endpoints
// in remote mode.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

// Store implements port/promptstore.Store using Postgres.
// [LSP] Any conforming Store (local file, HTTP client) can substitute.
type Store struct {
	pool *pgxpool.Pool
}

var _ promptstore.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const selectColumns = `id, title, description, prompt, category, complexity, type, icon, image, is_custom, created_at`

func scanRecord(row pgx.Row) (domainprompt.Record, error) {
	var (
		id  int64
		rec domainprompt.Record
	)
	err := row.Scan(&id, &rec.Title, &rec.Desc, &rec.Prompt, &rec.Category,
		&rec.Complexity, &rec.Type, &rec.Icon, &rec.Image, &rec.IsCustom, &rec.CreatedAt)
	if err != nil {
		return domainprompt.Record{}, err
	}
	rec.ID = domainprompt.NormalizeID(id)
	return rec, nil
}

func (s *Store) GetAll(ctx context.Context) ([]domainprompt.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM prompts ORDER BY created_at DESC, id DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()

	records := []domainprompt.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id domainprompt.ID) (domainprompt.Record, error) {
	numeric, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return domainprompt.Record{}, promptstore.ErrNotFound
	}

	query := `SELECT ` + selectColumns + ` FROM prompts WHERE id = $1`
	rec, err := scanRecord(s.pool.QueryRow(ctx, query, numeric))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Record{}, promptstore.ErrNotFound
		}
		return domainprompt.Record{}, fmt.Errorf("querying prompt %s: %w", id, err)
	}
	return rec, nil
}

// Create inserts and returns the confirmed row, including the id and
// created_at the database assigned.
func (s *Store) Create(ctx context.Context, fields domainprompt.Fields, ownerID *int64) (domainprompt.Record, error) {
	query := `
		INSERT INTO prompts (title, description, prompt, category, complexity, type, icon, image, is_custom, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + selectColumns

	rec, err := scanRecord(s.pool.QueryRow(ctx, query,
		fields.Title, fields.Desc, fields.Prompt, fields.Category,
		fields.Complexity, fields.Type, fields.Icon, fields.Image, true, ownerID))
	if err != nil {
		return domainprompt.Record{}, fmt.Errorf("inserting prompt: %w", err)
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id domainprompt.ID, patch domainprompt.Patch) (bool, error) {
	if patch.Empty() {
		return true, nil
	}
	numeric, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return false, promptstore.ErrNotFound
	}

	set := ""
	args := []any{numeric}
	add := func(column string, value any) {
		if set != "" {
			set += ", "
		}
		args = append(args, value)
		set += fmt.Sprintf("%s = $%d", column, len(args))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Desc != nil {
		add("description", *patch.Desc)
	}
	if patch.Prompt != nil {
		add("prompt", *patch.Prompt)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Complexity != nil {
		add("complexity", *patch.Complexity)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}

	tag, err := s.pool.Exec(ctx, "UPDATE prompts SET "+set+" WHERE id = $1", args...)
	if err != nil {
		return false, fmt.Errorf("updating prompt %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return false, promptstore.ErrNotFound
	}
	return true, nil
}

func (s *Store) DeleteMany(ctx context.Context, ids []domainprompt.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	numeric := make([]int64, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.ParseInt(id.String(), 10, 64)
		if err != nil {
			continue
		}
		numeric = append(numeric, n)
	}
	if len(numeric) == 0 {
		return 0, nil
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM prompts WHERE id = ANY($1)`, numeric)
	if err != nil {
		return 0, fmt.Errorf("deleting prompts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Import inserts each valid item in one transaction, collecting per-item
// validation errors instead of aborting the batch.
func (s *Store) Import(ctx context.Context, items []domainprompt.Fields, ownerID *int64) (int, []promptstore.ImportError, error) {
	var itemErrs []promptstore.ImportError
	valid := make([]domainprompt.Fields, 0, len(items))
	for _, f := range items {
		if err := f.Validate(); err != nil {
			itemErrs = append(itemErrs, promptstore.ImportError{Title: f.Title, Err: err.Error()})
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		return 0, itemErrs, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, itemErrs, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO prompts (title, description, prompt, category, complexity, type, icon, image, is_custom, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, f := range valid {
		if _, err := tx.Exec(ctx, query,
			f.Title, f.Desc, f.Prompt, f.Category, f.Complexity,
			f.Type, f.Icon, f.Image, f.IsCustom, ownerID); err != nil {
			return 0, itemErrs, fmt.Errorf("inserting imported prompt %q: %w", f.Title, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, itemErrs, fmt.Errorf("committing import: %w", err)
	}
	return len(valid), itemErrs, nil
}

// Initialize seeds the table with the built-in records when it is empty.
// Seed rows keep is_custom=false so they never count as user content.
func (s *Store) Initialize(ctx context.Context, seed []domainprompt.Record) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prompts`).Scan(&count); err != nil {
		return fmt.Errorf("counting prompts: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO prompts (title, description, prompt, category, complexity, type, icon, image, is_custom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, r := range seed {
		if _, err := tx.Exec(ctx, query,
			r.Title, r.Desc, r.Prompt, r.Category, r.EffectiveComplexity(),
			r.Type, r.Icon, r.Image, false); err != nil {
			return fmt.Errorf("seeding prompt %q: %w", r.Title, err)
		}
	}
	return tx.Commit(ctx)
}
