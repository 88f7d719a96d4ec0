// Package siteconfig serves and updates the site-wide configuration.
package siteconfig

import (
	"context"
	"fmt"
	"sync"

	"github.com/linhao/promptmaster/internal/domain/event"
	domaincfg "github.com/linhao/promptmaster/internal/domain/siteconfig"
	"github.com/linhao/promptmaster/internal/port/configstore"
)

// Notifier receives config change events. The websocket hub satisfies it.
type Notifier interface {
	Broadcast(event any)
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(any) {}

type Service struct {
	store    configstore.Store
	notifier Notifier

	mu  sync.RWMutex
	cfg domaincfg.Config
}

func NewService(store configstore.Store, notifier Notifier) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{store: store, notifier: notifier, cfg: domaincfg.Default()}
}

// Load reads the stored configuration, merged over the compiled-in defaults.
func (s *Service) Load(ctx context.Context) error {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading site config: %w", err)
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

func (s *Service) Get() domaincfg.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update persists the new configuration and notifies connected clients.
func (s *Service) Update(ctx context.Context, cfg domaincfg.Config) error {
	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("saving site config: %w", err)
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.notifier.Broadcast(event.New(event.TypeConfigUpdated))
	return nil
}

// RegistrationPolicy exposes the registration-related part of the config to
// the auth flow.
func (s *Service) RegistrationPolicy() (enabled, inviteRequired bool, inviteCode string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Registration.Enabled, s.cfg.InviteCode.Enabled, s.cfg.InviteCode.Code
}
