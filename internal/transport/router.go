package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/linhao/promptmaster/internal/port/promptstore"
	authsvc "github.com/linhao/promptmaster/internal/service/auth"
	favsvc "github.com/linhao/promptmaster/internal/service/favorites"
	libsvc "github.com/linhao/promptmaster/internal/service/library"
	cfgsvc "github.com/linhao/promptmaster/internal/service/siteconfig"

	adminhandler "github.com/linhao/promptmaster/internal/transport/admin"
	authhandler "github.com/linhao/promptmaster/internal/transport/auth"
	favhandler "github.com/linhao/promptmaster/internal/transport/favorites"
	libhandler "github.com/linhao/promptmaster/internal/transport/library"
	mcptransport "github.com/linhao/promptmaster/internal/transport/mcp"
	prompthandler "github.com/linhao/promptmaster/internal/transport/prompt"
	"github.com/linhao/promptmaster/internal/transport/session"
	cfghandler "github.com/linhao/promptmaster/internal/transport/siteconfig"
	wshandler "github.com/linhao/promptmaster/internal/transport/ws"
)

// NewRouter assembles the HTTP surface. tableStore is the relational store
// behind /api/prompts; it is nil in local mode, which mounts those endpoints
// behind a guard that rejects every call.
func NewRouter(
	lib *libsvc.Service,
	favs *favsvc.Service,
	auth *authsvc.Service,
	cfg *cfgsvc.Service,
	tableStore promptstore.Store,
	hub *wshandler.Hub,
	mcpServer *mcptransport.Server,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(session.Middleware(auth))

	api := r.Group("/api")

	prompts := api.Group("/prompts")
	if tableStore == nil {
		prompts.Use(RemoteOnly(false))
		// A nil store never gets a call past the guard; mount against an
		// unavailable stub to keep the route table identical in both modes.
		prompthandler.Register(prompts, unavailableStore{})
	} else {
		prompthandler.Register(prompts, tableStore)
	}

	libhandler.Register(api.Group("/library"), lib, favs)
	favhandler.Register(api.Group("/favorites"), favs)
	authhandler.Register(api.Group("/auth"), auth, cfg, favs)
	adminhandler.Register(api.Group("/admin"), auth)
	cfghandler.Register(api.Group("/site-config"), cfg)

	hub.Register(api.Group("/ws"))

	if mcpServer != nil {
		r.Any("/mcp", gin.WrapH(mcpServer.Handler()))
		r.Any("/mcp/*path", gin.WrapH(mcpServer.Handler()))
	}

	return r
}
