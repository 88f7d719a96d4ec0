package localfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linhao/promptmaster/internal/domain/siteconfig"
	"github.com/linhao/promptmaster/internal/port/configstore"
)

// ConfigStore persists the site configuration under its own key. Loading
// merges the stored blob over the compiled-in defaults so entries written by
// older builds keep working after the schema grows.
type ConfigStore struct {
	kv *KV
}

var _ configstore.Store = (*ConfigStore)(nil)

func NewConfigStore(kv *KV) *ConfigStore {
	return &ConfigStore{kv: kv}
}

func (s *ConfigStore) Load(_ context.Context) (siteconfig.Config, error) {
	var raw json.RawMessage
	err := s.kv.Get(KeySiteConfig, &raw)
	if errors.Is(err, ErrNoKey) {
		return siteconfig.Default(), nil
	}
	if err == nil {
		cfg, merr := siteconfig.Merge(raw)
		if merr == nil {
			return cfg, nil
		}
		err = fmt.Errorf("merging stored config: %w", merr)
	}

	// An unreadable entry must never take the site down.
	slog.Warn("stored site config unreadable, using defaults", "error", err)
	return siteconfig.Default(), nil
}

func (s *ConfigStore) Save(_ context.Context, cfg siteconfig.Config) error {
	if err := s.kv.Put(KeySiteConfig, cfg); err != nil {
		return fmt.Errorf("saving site config: %w", err)
	}
	return nil
}
