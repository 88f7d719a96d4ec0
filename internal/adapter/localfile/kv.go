// Package localfile is the local storage backend: every persisted entry lives
// in its own JSON file named after its storage key, under one data directory.
// Keeping the keys independent means clearing one entry can never corrupt the
// others.
package localfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys, kept byte-identical to the original browser keys so an
// exported data directory stays recognizable.
const (
	KeyPrompts    = "prompt_master_db_v1"
	KeyFavorites  = "user_favorites_v1"
	KeySiteConfig = "site_config"
)

var ErrNoKey = errors.New("localfile: key not present")

// KV is a write-through JSON file store. Every Put rewrites the whole entry;
// mutations are not batched.
type KV struct {
	dir string
	mu  sync.Mutex
}

func NewKV(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &KV{dir: dir}, nil
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

// Get decodes the entry for key into v. Returns ErrNoKey when the entry has
// never been written.
func (kv *KV) Get(key string, v any) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, err := os.ReadFile(kv.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoKey
		}
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// Put writes the entry atomically (temp file + rename) so a crash mid-write
// never leaves a truncated entry behind.
func (kv *KV) Put(key string, v any) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	tmp := kv.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, kv.path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}
