package mcp

import (
	"context"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	libsvc "github.com/linhao/promptmaster/internal/service/library"
)

// RegisterPrompts registers the library lookup as one parameterized MCP
// prompt, so records added at runtime are reachable without re-registration.
func RegisterPrompts(s *mcpserver.MCPServer, lib *libsvc.Service) {
	s.AddPrompt(
		mcpmcp.NewPrompt("library-prompt",
			mcpmcp.WithPromptDescription("Fetch one prompt from the library by id or exact title."),
			mcpmcp.WithArgument("id",
				mcpmcp.ArgumentDescription("Prompt id. Either id or title is required."),
			),
			mcpmcp.WithArgument("title",
				mcpmcp.ArgumentDescription("Exact prompt title, used when id is not given."),
			),
		),
		libraryPromptHandler(lib),
	)
}

func libraryPromptHandler(lib *libsvc.Service) mcpserver.PromptHandlerFunc {
	return func(_ context.Context, req mcpmcp.GetPromptRequest) (*mcpmcp.GetPromptResult, error) {
		rec, err := resolveRecord(lib, req.Params.Arguments["id"], req.Params.Arguments["title"])
		if err != nil {
			return nil, err
		}

		return mcpmcp.NewGetPromptResult(
			rec.Title,
			[]mcpmcp.PromptMessage{
				mcpmcp.NewPromptMessage(
					mcpmcp.RoleUser,
					mcpmcp.TextContent{
						Type: "text",
						Text: rec.Prompt,
					},
				),
			},
		), nil
	}
}

func resolveRecord(lib *libsvc.Service, id, title string) (domainprompt.Record, error) {
	if id != "" {
		rec, ok := lib.Get(domainprompt.ID(id))
		if !ok {
			return domainprompt.Record{}, fmt.Errorf("no prompt with id %s", id)
		}
		return rec, nil
	}
	if title == "" {
		return domainprompt.Record{}, fmt.Errorf("either id or title is required")
	}
	for _, rec := range lib.Snapshot() {
		if rec.Title == title {
			return rec, nil
		}
	}
	return domainprompt.Record{}, fmt.Errorf("no prompt titled %q", title)
}
