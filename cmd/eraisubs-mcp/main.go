package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"eraisubs/internal/adapters/cookiejar"
	"eraisubs/internal/adapters/filesystem"
	"eraisubs/internal/adapters/httpsession"
	mcpadapter "eraisubs/internal/adapters/mcp"
	"eraisubs/internal/adapters/sqlite"
	"eraisubs/internal/application"
	"eraisubs/internal/config"
)

func main() {
	favoritesFlag := flag.String("favorites-file", config.FavoritesPath(), "favorites file")
	flag.Parse()

	// stdout carries the protocol
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("app", "eraisubs-mcp").Logger()

	baseURL := config.BaseURL()
	repo := filesystem.NewFavoritesRepository(*favoritesFlag)

	mcpServer := server.NewMCPServer(
		"eraisubs-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterFavoritesTools(mcpServer, repo)

	session, err := newSession(baseURL, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("listing and download tools disabled")
	} else {
		cache := application.NewListingCache(session)
		mcpadapter.RegisterBrowseTools(mcpServer, cache, session, baseURL)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("serve failed")
	}
}

// newSession builds the authenticated session from the stored settings.
// Cookie flags are not accepted here; run eraisubs once with -C or -c.
func newSession(baseURL string, logger zerolog.Logger) (*httpsession.Session, error) {
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return nil, err
	}

	loader := application.NewCookieLoader(sqlite.NewCookieStore(), cookiejar.NewReader(), logger)
	cookies, err := loader.Load(settings.CookieFile, settings.CookieString, config.CookieDomain(baseURL))
	if err != nil {
		return nil, err
	}
	return httpsession.New(cookies, httpsession.WithLogger(logger))
}
