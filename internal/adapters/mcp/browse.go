package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// RegisterBrowseTools adds the listing and download tools to the MCP server.
// Listings are served from cache so repeated calls hit the site once.
func RegisterBrowseTools(s *server.MCPServer, cache *application.ListingCache, downloader ports.Downloader, baseURL string) {
	s.AddTool(listDirectoryTool(), listDirectoryHandler(cache, baseURL))
	s.AddTool(downloadTool(), downloadHandler(downloader, baseURL))
}

// --- list_directory ---

func listDirectoryTool() mcp.Tool {
	return mcp.NewTool("list_directory",
		mcp.WithDescription("List a remote subtitle directory. Each line is the entry kind, its display path and its absolute URL, tab separated."),
		mcp.WithString("dir",
			mcp.Description("Directory path such as Sub/2024/Winter. Omit to list the root."),
		),
	)
}

func listDirectoryHandler(cache *application.ListingCache, baseURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := strings.Trim(strings.TrimSpace(req.GetString("dir", "")), "/")
		if dir == "" {
			dir = domain.RootDir
		}
		if err := application.ValidateSingleLine("dir", dir); err != nil {
			return toolError(err)
		}

		links, err := cache.Get(ctx, domain.DirURL(baseURL, dir))
		if err != nil {
			return toolError(err)
		}
		if len(links) == 0 {
			return mcp.NewToolResultText("Empty directory."), nil
		}

		var sb strings.Builder
		for _, link := range links {
			fmt.Fprintf(&sb, "%s\t%s\t%s\n",
				domain.ClassifyLink(link), domain.DisplayName(link), domain.ResolveLink(baseURL, link))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- download ---

func downloadTool() mcp.Tool {
	return mcp.NewTool("download",
		mcp.WithDescription("Download a subtitle file into a local directory. Existing files are overwritten."),
		mcp.WithString("link",
			mcp.Description("File link as returned by list_directory (absolute URL or site-relative path)"),
			mcp.Required(),
		),
		mcp.WithString("dest",
			mcp.Description("Local destination directory. Defaults to the server working directory."),
		),
	)
}

func downloadHandler(downloader ports.Downloader, baseURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		link := strings.TrimSpace(req.GetString("link", ""))
		if err := application.ValidateRequired("link", link); err != nil {
			return toolError(err)
		}
		if !domain.IsFile(link) {
			return toolError(fmt.Errorf("%s is a directory, use list_directory", domain.DisplayName(link)))
		}

		dest := req.GetString("dest", ".")
		path, err := downloader.Download(ctx, domain.ResolveLink(baseURL, link), dest)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(path + " saved"), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
