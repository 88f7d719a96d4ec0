package configstore

import (
	"context"

	"github.com/linhao/promptmaster/internal/domain/siteconfig"
)

// Store persists the singleton site configuration under its own storage key.
type Store interface {
	// Load returns the stored config merged over defaults; a missing entry
	// yields the defaults without error.
	Load(ctx context.Context) (siteconfig.Config, error)
	Save(ctx context.Context, cfg siteconfig.Config) error
}
