package localfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhao/promptmaster/internal/adapter/localfile"
	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/domain/siteconfig"
	"github.com/linhao/promptmaster/internal/port/favstore"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

func newKV(t *testing.T) *localfile.KV {
	t.Helper()
	kv, err := localfile.NewKV(t.TempDir())
	require.NoError(t, err)
	return kv
}

func TestKV_RoundTrip(t *testing.T) {
	kv := newKV(t)

	require.NoError(t, kv.Put("k", map[string]int{"a": 1}))
	var got map[string]int
	require.NoError(t, kv.Get("k", &got))
	assert.Equal(t, 1, got["a"])
}

func TestKV_MissingKey(t *testing.T) {
	kv := newKV(t)
	var got []string
	assert.ErrorIs(t, kv.Get("absent", &got), localfile.ErrNoKey)
}

func TestKV_KeysAreIsolatedFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := localfile.NewKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Put(localfile.KeyPrompts, []string{"x"}))
	require.NoError(t, kv.Put(localfile.KeyFavorites, map[string][]string{"u": {"1"}}))

	// Clearing one entry never touches another.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NoError(t, os.Remove(filepath.Join(dir, entries[0].Name())))

	var favs map[string][]string
	var prompts []string
	gotFavs := kv.Get(localfile.KeyFavorites, &favs)
	gotPrompts := kv.Get(localfile.KeyPrompts, &prompts)
	assert.True(t, (gotFavs == nil) != (gotPrompts == nil))
}

func TestPromptStore_SeedsOnFirstRead(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))

	records, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, len(prompt.SeedCopy()))
	for _, r := range records {
		assert.False(t, r.IsCustom)
	}
}

func TestPromptStore_CreateIsSynchronousAndPrepends(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	ctx := context.Background()

	rec, err := store.Create(ctx, prompt.Fields{
		Title:    "Mine",
		Prompt:   "body",
		Category: prompt.CategoryCode,
		Type:     prompt.PresentationIcon,
	}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.IsCustom)
	assert.NotZero(t, rec.CreatedAt)

	records, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, records[0].ID)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestPromptStore_Update(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	ctx := context.Background()

	rec, err := store.Create(ctx, prompt.Fields{Title: "Before", Prompt: "p", Category: prompt.CategoryCode, Type: prompt.PresentationIcon}, nil)
	require.NoError(t, err)

	title := "After"
	ok, err := store.Update(ctx, rec.ID, prompt.Patch{Title: &title})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
}

func TestPromptStore_UpdateMissingRecord(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	title := "x"
	_, err := store.Update(context.Background(), "no-such-id", prompt.Patch{Title: &title})
	assert.ErrorIs(t, err, promptstore.ErrNotFound)
}

func TestPromptStore_EmptyPatchIsNoOp(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	ok, err := store.Update(context.Background(), "whatever", prompt.Patch{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPromptStore_DeleteManyToleratesUnknownIDs(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	ctx := context.Background()

	seeded, err := store.GetAll(ctx)
	require.NoError(t, err)

	deleted, err := store.DeleteMany(ctx, []prompt.ID{seeded[0].ID, "never-existed"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(seeded)-1)
}

func TestPromptStore_ImportCollectsPerItemErrors(t *testing.T) {
	store := localfile.NewPromptStore(newKV(t))
	ctx := context.Background()

	before, err := store.GetAll(ctx)
	require.NoError(t, err)

	imported, itemErrs, err := store.Import(ctx, []prompt.Fields{
		{Title: "Good", Prompt: "p", Category: prompt.CategoryArt, Type: prompt.PresentationImage},
		{Title: "", Prompt: "p", Category: prompt.CategoryArt, Type: prompt.PresentationImage},
		{Title: "Bad category", Prompt: "p", Category: "nope", Type: prompt.PresentationIcon},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	require.Len(t, itemErrs, 2)
	assert.Equal(t, "Bad category", itemErrs[1].Title)

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, "Good", after[0].Title)
	assert.True(t, after[0].IsCustom)
}

func TestPromptStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	kv, err := localfile.NewKV(dir)
	require.NoError(t, err)
	ctx := context.Background()

	store := localfile.NewPromptStore(kv)
	rec, err := store.Create(ctx, prompt.Fields{Title: "Kept", Prompt: "p", Category: prompt.CategoryCode, Type: prompt.PresentationIcon}, nil)
	require.NoError(t, err)

	kv2, err := localfile.NewKV(dir)
	require.NoError(t, err)
	reopened := localfile.NewPromptStore(kv2)
	got, err := reopened.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kept", got.Title)
}

func TestFavoritesStore_RoundTrip(t *testing.T) {
	store := localfile.NewFavoritesStore(newKV(t))
	ctx := context.Background()

	m, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)

	m["alice"] = []prompt.ID{"1", "1700000000000-5"}
	require.NoError(t, store.Save(ctx, m))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, favstore.Mapping{"alice": {"1", "1700000000000-5"}}, got)
}

func TestConfigStore_MissingEntryYieldsDefaults(t *testing.T) {
	store := localfile.NewConfigStore(newKV(t))
	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, siteconfig.Default(), cfg)
}

func TestConfigStore_RoundTripAndMerge(t *testing.T) {
	kv := newKV(t)
	store := localfile.NewConfigStore(kv)
	ctx := context.Background()

	cfg := siteconfig.Default()
	cfg.HomeTitle = "Changed"
	require.NoError(t, store.Save(ctx, cfg))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Changed", got.HomeTitle)
	assert.Equal(t, siteconfig.Default().PromptsPage, got.PromptsPage)
}

func TestConfigStore_CorruptEntryFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	kv, err := localfile.NewKV(dir)
	require.NoError(t, err)
	store := localfile.NewConfigStore(kv)

	entries, _ := os.ReadDir(dir)
	if len(entries) == 0 {
		// Write something first so the entry file exists, then corrupt it.
		require.NoError(t, store.Save(context.Background(), siteconfig.Default()))
		entries, _ = os.ReadDir(dir)
	}
	require.NotEmpty(t, entries)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{broken"), 0o644))

	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, siteconfig.Default(), cfg)
}

func TestKV_GetAfterCorruptFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	kv, err := localfile.NewKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Put("k", "v"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), 0o644))

	var got string
	err = kv.Get("k", &got)
	require.Error(t, err)
	assert.False(t, errors.Is(err, localfile.ErrNoKey))
}
