package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linhao/promptmaster/internal/adapter/apiclient"
	"github.com/linhao/promptmaster/internal/adapter/envadmin"
	"github.com/linhao/promptmaster/internal/adapter/localfile"
	pgdb "github.com/linhao/promptmaster/internal/adapter/postgres"
	pgprompt "github.com/linhao/promptmaster/internal/adapter/postgres/prompt"
	pguser "github.com/linhao/promptmaster/internal/adapter/postgres/user"

	"github.com/linhao/promptmaster/internal/config"
	"github.com/linhao/promptmaster/internal/port/promptstore"
	"github.com/linhao/promptmaster/internal/port/userstore"

	authsvc "github.com/linhao/promptmaster/internal/service/auth"
	favsvc "github.com/linhao/promptmaster/internal/service/favorites"
	libsvc "github.com/linhao/promptmaster/internal/service/library"
	cfgsvc "github.com/linhao/promptmaster/internal/service/siteconfig"

	"github.com/linhao/promptmaster/internal/transport"
	mcptransport "github.com/linhao/promptmaster/internal/transport/mcp"
	wshandler "github.com/linhao/promptmaster/internal/transport/ws"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool    *pgxpool.Pool // nil in local mode
	Server  *http.Server
	Library *libsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	// ── Local storage ────────────────────────────────────────────────────────
	// The favorites ledger and site config always live on the local file, even
	// when prompts come from the relational backend.
	kv, err := localfile.NewKV(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening data directory: %w", err)
	}

	// ── Backend selection ────────────────────────────────────────────────────
	var (
		pool       *pgxpool.Pool
		libStore   promptstore.Store
		tableStore promptstore.Store
		users      userstore.Store
	)
	switch cfg.Backend {
	case config.BackendRemote:
		pool, err = pgdb.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		tableStore = pgprompt.New(pool)
		users = pguser.New(pool)
		// The library consumes the same HTTP endpoints a browser build would,
		// keeping one code path behind the store port.
		libStore = apiclient.New(cfg.RemoteAPIBase)
	case config.BackendLocal:
		libStore = localfile.NewPromptStore(kv)
		users, err = envadmin.New(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("preparing admin account: %w", err)
		}
	}

	// ── Services ─────────────────────────────────────────────────────────────
	hub := wshandler.NewHub()

	libSvc := libsvc.NewService(libStore, hub)
	favSvc := favsvc.NewService(localfile.NewFavoritesStore(kv))
	authSvc := authsvc.NewService(users, cfg.JWTSecret)
	cfgSvc := cfgsvc.NewService(localfile.NewConfigStore(kv), hub)

	if err := cfgSvc.Load(ctx); err != nil {
		return nil, err
	}
	if err := favSvc.Load(ctx); err != nil {
		return nil, err
	}

	// ── Transport ────────────────────────────────────────────────────────────
	mcpServer := mcptransport.New(libSvc)
	router := transport.NewRouter(libSvc, favSvc, authSvc, cfgSvc, tableStore, hub, mcpServer)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "backend", cfg.Backend, "port", cfg.Port)

	return &App{
		Pool:    pool,
		Server:  server,
		Library: libSvc,
	}, nil
}
