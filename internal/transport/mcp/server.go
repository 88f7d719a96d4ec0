// Package mcp exposes the prompt library to MCP clients: the collection as
// native MCP prompts and the search pipeline as tools.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	libsvc "github.com/linhao/promptmaster/internal/service/library"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer.
// [SRP] Server lifecycle only; tools live in tools.go, prompts in prompts.go.
// [OCP] Adding new tools or prompts never requires changes to this file.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(lib *libsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"promptmaster",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
	)

	RegisterTools(mcpSrv, lib)
	RegisterPrompts(mcpSrv, lib)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
