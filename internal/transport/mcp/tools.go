package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/domain/query"
	libsvc "github.com/linhao/promptmaster/internal/service/library"
)

// RegisterTools registers all MCP tools on the server.
// [SRP] Tool registration only.
// [OCP] Add a new tool by adding a new AddTool call; server.go never changes.
func RegisterTools(s *mcpserver.MCPServer, lib *libsvc.Service) {
	s.AddTool(mcpmcp.NewTool("search_prompts",
		mcpmcp.WithDescription("Search the prompt library. Runs the same filter, sort and pagination pipeline the web UI uses and returns one page of matches."),
		mcpmcp.WithString("query", mcpmcp.Description("Substring matched against title, prompt text and description")),
		mcpmcp.WithString("category", mcpmcp.Description("Category filter: code, mj, writing, roleplay, business, custom, or all")),
		mcpmcp.WithString("complexity", mcpmcp.Description("Complexity filter: beginner, intermediate, advanced, or all")),
		mcpmcp.WithString("sort", mcpmcp.Description("Sort order: latest, oldest, title-asc, title-desc, or popular")),
		mcpmcp.WithNumber("page", mcpmcp.Description("1-based page, 15 records per page")),
	), searchHandler(lib))

	s.AddTool(mcpmcp.NewTool("get_prompt",
		mcpmcp.WithDescription("Fetch one prompt record by id, including its full prompt text."),
		mcpmcp.WithString("id", mcpmcp.Required(), mcpmcp.Description("Prompt id")),
	), getHandler(lib))
}

func searchHandler(lib *libsvc.Service) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		criteria := query.Criteria{
			Search:     mcpmcp.ParseString(req, "query", ""),
			Category:   domainprompt.Category(mcpmcp.ParseString(req, "category", "all")),
			Complexity: domainprompt.Complexity(mcpmcp.ParseString(req, "complexity", "all")),
			Sort:       query.Sort(mcpmcp.ParseString(req, "sort", "latest")),
			Page:       int(mcpmcp.ParseFloat64(req, "page", 1)),
		}

		// MCP clients carry no user session, so the favorites-backed "custom"
		// sentinel yields an empty page here.
		res := lib.View(criteria, nil)

		payload, err := json.Marshal(map[string]any{
			"prompts":    res.Items,
			"total":      res.Total,
			"totalPages": res.TotalPages,
			"page":       res.Page,
		})
		if err != nil {
			return nil, fmt.Errorf("encoding search result: %w", err)
		}
		return mcpmcp.NewToolResultText(string(payload)), nil
	}
}

func getHandler(lib *libsvc.Service) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id := mcpmcp.ParseString(req, "id", "")
		if id == "" {
			return mcpmcp.NewToolResultError("id is required"), nil
		}

		rec, ok := lib.Get(domainprompt.ID(id))
		if !ok {
			return mcpmcp.NewToolResultError(fmt.Sprintf("no prompt with id %s", id)), nil
		}

		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encoding prompt: %w", err)
		}
		return mcpmcp.NewToolResultText(string(payload)), nil
	}
}
