package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"eraisubs/internal/application/commands"
	"eraisubs/internal/ports"
)

// RegisterFavoritesTools adds the favorites tools to the MCP server.
func RegisterFavoritesTools(s *server.MCPServer, repo ports.FavoritesRepository) {
	s.AddTool(listFavoritesTool(), listFavoritesHandler(repo))
	s.AddTool(addFavoriteTool(), addFavoriteHandler(repo))
}

// --- list_favorites ---

func listFavoritesTool() mcp.Tool {
	return mcp.NewTool("list_favorites",
		mcp.WithDescription("List the remembered directory paths, one per line, in file order."),
	)
}

func listFavoritesHandler(repo ports.FavoritesRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		favorites, err := commands.NewListFavoritesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(favorites) == 0 {
			return mcp.NewToolResultText("No favorites."), nil
		}
		return mcp.NewToolResultText(strings.Join(favorites, "\n")), nil
	}
}

// --- add_favorite ---

func addFavoriteTool() mcp.Tool {
	return mcp.NewTool("add_favorite",
		mcp.WithDescription("Remember a directory path so it can be picked with --favorites."),
		mcp.WithString("path",
			mcp.Description("Directory path such as Sub/2024/Winter/Show"),
			mcp.Required(),
		),
	)
}

func addFavoriteHandler(repo ports.FavoritesRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		msg, err := commands.NewAddFavoriteCommand(repo, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
